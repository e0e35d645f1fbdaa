package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_DRIVER", "BLOB_DRIVER", "S3_BUCKET", "SIGNED_URL_TTL", "WIZARD_IDLE_TTL", "NOTES_DEBOUNCE", "NATS_URL"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorageDynamoDB, cfg.StorageDriver)
	assert.Equal(t, BlobS3, cfg.BlobDriver)
	assert.Equal(t, "checklists", cfg.S3Bucket)
	assert.Equal(t, time.Hour, cfg.SignedURLTTL)
	assert.Equal(t, 30*time.Minute, cfg.WizardIdleTTL)
	assert.Equal(t, 800*time.Millisecond, cfg.NotesDebounce)
	assert.Empty(t, cfg.NATSURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("SIGNED_URL_TTL", "15m")
	t.Setenv("NOTES_DEBOUNCE", "not-a-duration")
	t.Setenv("CNPJ_API_BASE_URL", "http://localhost:9000/cnpj/")

	cfg := Load()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, 15*time.Minute, cfg.SignedURLTTL)
	assert.Equal(t, 800*time.Millisecond, cfg.NotesDebounce)
	assert.Equal(t, "http://localhost:9000/cnpj", cfg.CNPJAPIBaseURL)
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{StorageDriver: StorageMemory, BlobDriver: BlobMemory, AuthJWTSecret: "s"}
	require.NoError(t, cfg.Validate())

	cfg.StorageDriver = StoragePostgres
	require.Error(t, cfg.Validate())

	cfg.PostgresDSN = "postgres://localhost/frota"
	require.NoError(t, cfg.Validate())

	cfg.BlobDriver = "gcs"
	require.Error(t, cfg.Validate())

	cfg.BlobDriver = BlobMemory
	cfg.AuthJWTSecret = ""
	require.Error(t, cfg.Validate())
}

// Package config reads the service settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	BlobS3     = "s3"
	BlobMemory = "memory"
)

// Config holds every setting of the API and the CLI.
//
// Supported env vars (local-friendly defaults):
//   - PORT (default: 8080)
//   - STORAGE_DRIVER dynamodb|postgres|memory (default: dynamodb)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
//   - CHECKLISTS_TABLE, SUPPLIERS_TABLE, VEHICLES_TABLE, USERS_TABLE, COUNTERS_TABLE
//   - POSTGRES_DSN
//   - BLOB_DRIVER s3|memory (default: s3), S3_BUCKET, S3_ENDPOINT, SIGNED_URL_TTL
//   - AUTH_JWT_SECRET
//   - NATS_URL (optional), NATS_SUBJECT_PREFIX
//   - WIZARD_IDLE_TTL, NOTES_DEBOUNCE, DRAFT_SAVE_TIMEOUT
//   - CNPJ_API_BASE_URL
type Config struct {
	Port int

	StorageDriver string
	BlobDriver    string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	ChecklistsTable string
	SuppliersTable  string
	VehiclesTable   string
	UsersTable      string
	CountersTable   string

	PostgresDSN string

	S3Bucket     string
	S3Endpoint   string
	SignedURLTTL time.Duration

	AuthJWTSecret string

	NATSURL           string
	NATSSubjectPrefix string

	WizardIdleTTL    time.Duration
	NotesDebounce    time.Duration
	DraftSaveTimeout time.Duration

	CNPJAPIBaseURL string
}

func Load() Config {
	return Config{
		Port:               getenvInt("PORT", 8080),
		StorageDriver:      strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		BlobDriver:         strings.ToLower(getenvDefault("BLOB_DRIVER", BlobS3)),
		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		ChecklistsTable:    getenvDefault("CHECKLISTS_TABLE", "checklists"),
		SuppliersTable:     getenvDefault("SUPPLIERS_TABLE", "suppliers"),
		VehiclesTable:      getenvDefault("VEHICLES_TABLE", "vehicles"),
		UsersTable:         getenvDefault("USERS_TABLE", "users"),
		CountersTable:      getenvDefault("COUNTERS_TABLE", "counters"),
		PostgresDSN:        os.Getenv("POSTGRES_DSN"),
		S3Bucket:           getenvDefault("S3_BUCKET", "checklists"),
		S3Endpoint:         os.Getenv("S3_ENDPOINT"),
		SignedURLTTL:       getenvDuration("SIGNED_URL_TTL", time.Hour),
		AuthJWTSecret:      os.Getenv("AUTH_JWT_SECRET"),
		NATSURL:            os.Getenv("NATS_URL"),
		NATSSubjectPrefix:  getenvDefault("NATS_SUBJECT_PREFIX", "checklists"),
		WizardIdleTTL:      getenvDuration("WIZARD_IDLE_TTL", 30*time.Minute),
		NotesDebounce:      getenvDuration("NOTES_DEBOUNCE", 800*time.Millisecond),
		DraftSaveTimeout:   getenvDuration("DRAFT_SAVE_TIMEOUT", 10*time.Second),
		CNPJAPIBaseURL:     strings.TrimRight(getenvDefault("CNPJ_API_BASE_URL", "https://brasilapi.com.br/api/cnpj/v1"), "/"),
	}
}

// Validate reports settings that make the selected drivers unusable.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	case StoragePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	switch c.BlobDriver {
	case BlobS3, BlobMemory:
	default:
		return fmt.Errorf("unsupported BLOB_DRIVER %q", c.BlobDriver)
	}
	if c.AuthJWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

// Package app wires the configured adapters into the use cases shared by the
// HTTP server and the CLI.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"frota_checklist/internal/adapter/persistence/memory"
	"frota_checklist/internal/adapter/persistence/repository"
	"frota_checklist/internal/infrastructure/auth"
	"frota_checklist/internal/infrastructure/cnpj"
	"frota_checklist/internal/infrastructure/config"
	"frota_checklist/internal/infrastructure/database"
	"frota_checklist/internal/infrastructure/events"
	"frota_checklist/internal/infrastructure/metrics"
	"frota_checklist/internal/infrastructure/pdf"
	"frota_checklist/internal/infrastructure/storage"
	"frota_checklist/internal/usecase"
	"frota_checklist/internal/usecase/interfaces"
)

const imageFetchTimeout = 30 * time.Second

// Container holds the use cases of one process.
type Container struct {
	Config   config.Config
	Metrics  *metrics.Recorder
	Verifier *auth.JWTVerifier
	Auth     *usecase.AuthContext
	Registry *usecase.WizardRegistry

	Checklists usecase.IChecklistUseCase
	Reports    usecase.IReportUseCase
	Suppliers  usecase.ISupplierUseCase
	Vehicles   usecase.IVehicleUseCase
	Users      usecase.IUserUseCase

	closers []func()
}

type stores struct {
	checklists interfaces.IChecklistRepository
	suppliers  interfaces.ISupplierRepository
	vehicles   interfaces.IVehicleRepository
	users      interfaces.IUserRepository
}

// Build connects the storage, blob and event drivers selected in cfg.
func Build(ctx context.Context, cfg config.Config) (*Container, error) {
	st, err := buildStores(cfg)
	if err != nil {
		return nil, err
	}
	blobs, images := buildBlobs(cfg)

	c := &Container{Config: cfg, Metrics: metrics.NewRecorder()}

	var publisher interfaces.IEventPublisher = events.NoopPublisher{}
	if cfg.NATSURL != "" {
		nats, err := events.ConnectNATS(ctx, cfg.NATSURL, cfg.NATSSubjectPrefix)
		if err != nil {
			// events are informational; the service runs without them
			log.Printf("[events][nats] disabled err=%v", err)
		} else {
			publisher = nats
			c.closers = append(c.closers, func() { _ = nats.Close() })
		}
	}

	c.Verifier, err = auth.NewJWTVerifier(cfg.AuthJWTSecret)
	if err != nil {
		return nil, fmt.Errorf("jwt verifier: %w", err)
	}
	c.Auth = usecase.NewAuthContext(c.Verifier, st.users)
	if err := c.Auth.Initialize(ctx); err != nil {
		return nil, err
	}
	c.closers = append(c.closers, c.Auth.Teardown)

	media := usecase.NewMediaUseCase(st.checklists, blobs, cfg.SignedURLTTL, c.Metrics)
	c.Vehicles = usecase.NewVehicleUseCase(st.vehicles)
	c.Suppliers = usecase.NewSupplierUseCase(st.suppliers, cnpj.NewBrasilAPIClient(cfg.CNPJAPIBaseURL, nil))
	c.Checklists = usecase.NewChecklistUseCase(st.checklists, st.vehicles, st.suppliers, media, publisher)
	c.Reports = usecase.NewReportUseCase(c.Checklists, media, images, pdf.NewFPDFRenderer(), c.Metrics)
	c.Users = usecase.NewUserUseCase(st.users, c.Auth)

	c.Registry = usecase.NewWizardRegistry(usecase.WizardDeps{
		Checklists:       st.checklists,
		Media:            media,
		Vehicles:         c.Vehicles,
		Suppliers:        c.Suppliers,
		Events:           publisher,
		Metrics:          c.Metrics,
		NotesDebounce:    cfg.NotesDebounce,
		DraftSaveTimeout: cfg.DraftSaveTimeout,
	}, cfg.WizardIdleTTL)
	c.closers = append(c.closers, c.Auth.Subscribe(c.Registry.HandleAuthEvent))

	log.Printf("[app] ready storage=%s blob=%s events=%t", cfg.StorageDriver, cfg.BlobDriver, cfg.NATSURL != "")
	return c, nil
}

// Close releases the connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

func buildStores(cfg config.Config) (stores, error) {
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb := database.ConnectDynamoDB(cfg)
		return stores{
			checklists: repository.NewChecklistDynamoRepository(ddb, cfg.ChecklistsTable, cfg.CountersTable),
			suppliers:  repository.NewSupplierDynamoRepository(ddb, cfg.SuppliersTable),
			vehicles:   repository.NewVehicleDynamoRepository(ddb, cfg.VehiclesTable),
			users:      repository.NewUserDynamoRepository(ddb, cfg.UsersTable),
		}, nil
	case config.StoragePostgres:
		db, err := database.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			return stores{}, err
		}
		if err := repository.AutoMigrate(db); err != nil {
			return stores{}, fmt.Errorf("migrate: %w", err)
		}
		return stores{
			checklists: repository.NewChecklistGormRepository(db),
			suppliers:  repository.NewSupplierGormRepository(db),
			vehicles:   repository.NewVehicleGormRepository(db),
			users:      repository.NewUserGormRepository(db),
		}, nil
	case config.StorageMemory:
		return stores{
			checklists: memory.NewChecklistRepository(),
			suppliers:  memory.NewSupplierRepository(),
			vehicles:   memory.NewVehicleRepository(),
			users:      memory.NewUserRepository(),
		}, nil
	}
	return stores{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
}

// buildBlobs returns the blob store and the source the PDF export downloads
// images from. The memory store serves both.
func buildBlobs(cfg config.Config) (interfaces.IBlobStore, interfaces.IImageSource) {
	if cfg.BlobDriver == config.BlobMemory {
		m := storage.NewMemoryBlobStore(cfg.S3Bucket)
		return m, m
	}
	return storage.ConnectS3(cfg), storage.NewHTTPImageSource(imageFetchTimeout)
}

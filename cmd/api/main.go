package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "frota_checklist/docs"
	"frota_checklist/internal/adapter/http/routes"
	"frota_checklist/internal/app"
	"frota_checklist/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Frota Checklist API
// @version         1.0
// @description     Vehicle maintenance checklists (wizard, media, defects, PDF export) backed by DynamoDB or Postgres.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer c.Close()

	// open wizards save their drafts when the registry stops
	registryDone := make(chan struct{})
	go func() {
		c.Registry.Run(ctx)
		close(registryDone)
	}()

	if err := routes.Run(ctx, c); err != nil {
		log.Printf("server stopped: %v", err)
		stop()
	}
	<-registryDone
}

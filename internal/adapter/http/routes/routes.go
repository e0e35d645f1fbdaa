package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	_ "frota_checklist/docs"
	"frota_checklist/internal/adapter/http/handlers"
	"frota_checklist/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, c *app.Container) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(c.Config.Port),
		Handler:           NewRouter(c),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http] listening addr=%s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Printf("[http] shutting down")
	return srv.Shutdown(shutdownCtx)
}

// NewRouter registers every route on a fresh engine.
func NewRouter(c *app.Container) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(c.Metrics.Handler()))

	getRoutes(router, c)
	return router
}

func getRoutes(router *gin.Engine, c *app.Container) {
	checklistHandler := handlers.NewChecklistHandler(c.Checklists, c.Reports)
	wizardHandler := handlers.NewWizardHandler(c.Registry)
	supplierHandler := handlers.NewSupplierHandler(c.Suppliers)
	vehicleHandler := handlers.NewVehicleHandler(c.Vehicles)
	userHandler := handlers.NewUserHandler(c.Users)
	authHandler := handlers.NewAuthHandler(c.Auth)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	private := v1.Group("")
	private.Use(handlers.AuthMiddleware(c.Auth))
	addAuthRoutes(private, authHandler)
	addChecklistRoutes(private, checklistHandler)
	addWizardRoutes(private, wizardHandler)
	addSupplierRoutes(private, supplierHandler)
	addVehicleRoutes(private, vehicleHandler)
	addAdminRoutes(private, userHandler)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

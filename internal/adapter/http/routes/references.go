package routes

import (
	"frota_checklist/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSuppliers = "/suppliers"
	PathVehicles  = "/vehicles"
	PathAdmin     = "/admin"
	PathAuth      = "/auth"
)

func addSupplierRoutes(rg *gin.RouterGroup, h *handlers.SupplierHandler) {
	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.GET("", h.List)
		suppliers.POST("", h.Create)
		suppliers.GET("/cnpj/:cnpj", h.LookupCNPJ)
		suppliers.PUT("/:id", h.Update)
		suppliers.DELETE("/:id", h.Delete)
	}
}

func addVehicleRoutes(rg *gin.RouterGroup, h *handlers.VehicleHandler) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.GET("", h.List)
		vehicles.POST("", h.Create)
		vehicles.PUT("/:id", h.Update)
		vehicles.DELETE("/:id", h.Delete)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	admin := rg.Group(PathAdmin, handlers.RequireAdmin())
	{
		admin.GET("/users", h.List)
		admin.PATCH("/users/:id/role", h.SetRole)
		admin.POST("/users/:id/disable", h.Disable)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/logout", h.Logout)
	}
}

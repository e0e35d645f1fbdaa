package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "frota_checklist/internal/adapter/http/dto/request"
	response "frota_checklist/internal/adapter/http/dto/response"
	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase"
	"frota_checklist/pkg"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) List(c *gin.Context) {
	var (
		list []entities.Vehicle
		err  error
	)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		list, err = h.usecase.Search(c.Request.Context(), q)
	} else {
		list, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(list))
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	vehicle, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) Update(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	vehicle, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

// Delete deactivates the vehicle; checklists keep pointing at it.
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapVehicleError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlate), errors.Is(err, usecase.ErrInvalidVehicleID):
		return invalidRequest(err)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleAlreadyExists):
		return pkg.NewDomainErrorSimple("VEHICLE_ALREADY_EXISTS", "An active vehicle with this plate already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

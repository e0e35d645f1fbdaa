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

type SupplierHandler struct {
	usecase usecase.ISupplierUseCase
}

func NewSupplierHandler(uc usecase.ISupplierUseCase) *SupplierHandler {
	return &SupplierHandler{usecase: uc}
}

// List returns every supplier, or the typeahead matches when q is given.
func (h *SupplierHandler) List(c *gin.Context) {
	var (
		list []entities.Supplier
		err  error
	)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		list, err = h.usecase.Search(c.Request.Context(), q)
	} else {
		list, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSuppliers(list))
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	supplier, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSupplier(supplier))
}

func (h *SupplierHandler) Update(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	supplier, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSupplier(supplier))
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// LookupCNPJ prefills the supplier form from the public CNPJ registry.
func (h *SupplierHandler) LookupCNPJ(c *gin.Context) {
	lookup, err := h.usecase.LookupCNPJ(c.Request.Context(), c.Param("cnpj"))
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, lookup)
}

func mapSupplierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCNPJ), errors.Is(err, usecase.ErrCorporateNameRequired), errors.Is(err, usecase.ErrInvalidSupplierID):
		return invalidRequest(err)
	case errors.Is(err, usecase.ErrSupplierNotFound):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_FOUND", "Supplier not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSupplierAlreadyExists):
		return pkg.NewDomainErrorSimple("SUPPLIER_ALREADY_EXISTS", "A supplier with this CNPJ already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCNPJNotFound):
		return pkg.NewDomainErrorSimple("CNPJ_NOT_FOUND", "CNPJ not found in the public registry", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCNPJLookupUnavailable):
		return pkg.NewDomainErrorSimple("CNPJ_LOOKUP_UNAVAILABLE", "CNPJ lookup is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	request "frota_checklist/internal/adapter/http/dto/request"
	response "frota_checklist/internal/adapter/http/dto/response"
	"frota_checklist/internal/usecase"
	"frota_checklist/pkg"

	"github.com/gin-gonic/gin"
)

// UserHandler is the admin user management page.
type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *UserHandler) SetRole(c *gin.Context) {
	var payload request.SetRoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	user, err := h.usecase.SetRole(c.Request.Context(), c.Param("id"), payload.ToRole())
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) Disable(c *gin.Context) {
	user, err := h.usecase.Disable(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRole):
		return invalidRequest(err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCannotChangeOwnRole):
		return pkg.NewDomainErrorSimple("CANNOT_CHANGE_OWN_ROLE", "Administrators cannot change their own role", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionRequired):
		return errSessionRequired
	case errors.Is(err, usecase.ErrAdminRequired):
		return errAdminRequired
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

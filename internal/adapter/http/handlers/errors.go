package handlers

import (
	"net/http"

	"frota_checklist/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errSessionRequired = pkg.NewDomainErrorSimple("SESSION_REQUIRED", "Authentication required", http.StatusUnauthorized)
	errAdminRequired   = pkg.NewDomainErrorSimple("ADMIN_REQUIRED", "Administrator role required", http.StatusForbidden)
	errChecklistLocked = pkg.NewDomainErrorSimple("CHECKLIST_LOCKED", "Checklist is finalized and locked", http.StatusConflict)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// invalidRequest reports a validation failure with the reason as details.
func invalidRequest(err error) *pkg.AppError {
	return errInvalidPayload.WithDetails(err.Error())
}

// storeError reports a failed remote store call. The remote message is kept
// so the user can decide to retry.
func storeError(err error) *pkg.AppError {
	return pkg.NewDomainError("STORE_ERROR", "Remote store request failed", err, http.StatusBadGateway)
}

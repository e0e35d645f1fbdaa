package handlers

import (
	"errors"
	"net/http"
	"strings"

	"frota_checklist/internal/usecase"
	"frota_checklist/pkg"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the Bearer token and places the caller in the
// request context. Requests without a valid session never reach the handlers.
func AuthMiddleware(auth usecase.IAuthContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errSessionRequired.HTTPStatus, errSessionRequired.ToHTTPError())
			return
		}
		acc, err := auth.Resolve(c.Request.Context(), token)
		if err != nil {
			appErr := mapAuthError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Request = c.Request.WithContext(usecase.ContextWithAccount(c.Request.Context(), acc))
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		acc, ok := usecase.AccountFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(errSessionRequired.HTTPStatus, errSessionRequired.ToHTTPError())
			return
		}
		if !acc.IsAdmin() {
			c.AbortWithStatusJSON(errAdminRequired.HTTPStatus, errAdminRequired.ToHTTPError())
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidToken), errors.Is(err, usecase.ErrSessionRequired):
		return errSessionRequired
	case errors.Is(err, usecase.ErrAccountDisabled):
		return pkg.NewDomainErrorSimple("ACCOUNT_DISABLED", "Account disabled", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAdminRequired):
		return errAdminRequired
	case errors.Is(err, usecase.ErrAuthNotInitialized):
		return pkg.NewDomainErrorSimple("AUTH_UNAVAILABLE", "Authentication is not ready", http.StatusServiceUnavailable)
	default:
		// profile lookup against the user store
		return storeError(err)
	}
}

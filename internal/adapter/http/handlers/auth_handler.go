package handlers

import (
	"net/http"

	"frota_checklist/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth usecase.IAuthContext
}

func NewAuthHandler(auth usecase.IAuthContext) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Logout revokes every token issued to the caller so far. Open wizards of the
// account are closed by the sign-out event.
func (h *AuthHandler) Logout(c *gin.Context) {
	acc, ok := usecase.AccountFromContext(c.Request.Context())
	if !ok {
		respondError(c, errSessionRequired)
		return
	}
	if err := h.auth.SignOut(c.Request.Context(), acc.ID); err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

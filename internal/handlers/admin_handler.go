package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/auth"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/session"
	"storefront/internal/validation"
)

type AdminHandler struct {
	sessions    *session.Store
	credentials auth.CredentialChecker
}

func NewAdminHandler(sessions *session.Store, credentials auth.CredentialChecker) *AdminHandler {
	return &AdminHandler{sessions: sessions, credentials: credentials}
}

// Login activa el flag de admin de la sesión si las credenciales coinciden
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if violations := validation.Check(req); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": violations})
		return
	}

	if !h.credentials.Check(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	h.sessions.SetAdmin(middleware.SessionID(c), true)
	c.JSON(http.StatusOK, gin.H{"message": "login successful"})
}

// Logout apaga el flag de admin; la sesión y su carrito siguen vivos
func (h *AdminHandler) Logout(c *gin.Context) {
	h.sessions.SetAdmin(middleware.SessionID(c), false)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Check informa si la sesión actual es de administrador
func (h *AdminHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"isAdmin": h.sessions.IsAdmin(middleware.SessionID(c))})
}

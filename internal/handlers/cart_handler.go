package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/session"
	"storefront/internal/validation"
)

// CartHandler opera sobre el carrito de la sesión que llama.
// Ninguna operación consulta el catálogo: el carrito admite cantidades
// mayores al stock y referencias a productos ya borrados.
type CartHandler struct {
	sessions *session.Store
}

func NewCartHandler(sessions *session.Store) *CartHandler {
	return &CartHandler{sessions: sessions}
}

// GetCart devuelve el carrito actual (vacío antes del primer toque)
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.Cart(middleware.SessionID(c)))
}

// AddItem agrega unidades de un producto; líneas existentes acumulan
func (h *CartHandler) AddItem(c *gin.Context) {
	var req models.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if violations := validation.Check(req); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": violations})
		return
	}

	cart := h.sessions.AddItem(middleware.SessionID(c), req.ProductID, req.Quantity)
	c.JSON(http.StatusOK, cart)
}

// UpdateItem fija la cantidad de una línea; <= 0 la elimina
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req models.CartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if violations := validation.Check(req); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": violations})
		return
	}

	cart := h.sessions.UpdateItem(middleware.SessionID(c), c.Param("productId"), *req.Quantity)
	c.JSON(http.StatusOK, cart)
}

// RemoveItem quita la línea del producto; idempotente
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart := h.sessions.RemoveItem(middleware.SessionID(c), c.Param("productId"))
	c.JSON(http.StatusOK, cart)
}

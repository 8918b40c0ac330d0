package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/session"
	"storefront/internal/validation"
)

type OrderHandler struct {
	store    *repository.Store
	sessions *session.Store
}

func NewOrderHandler(store *repository.Store, sessions *session.Store) *OrderHandler {
	return &OrderHandler{store: store, sessions: sessions}
}

// CreateOrder registra el pedido del checkout y vacía el carrito de la
// sesión. El total viene del cliente y se guarda sin recalcular.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if violations := validation.Check(input); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": violations})
		return
	}

	order, err := h.store.CreateOrder(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}

	h.sessions.ClearCart(middleware.SessionID(c))

	log.WithFields(log.Fields{
		"order": order.ID,
		"items": len(order.Items),
		"total": order.Total,
	}).Info("order created")

	c.JSON(http.StatusCreated, order)
}

// ListOrders lista todos los pedidos (solo admin)
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.store.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/validation"
)

type ProductHandler struct {
	store *repository.Store
}

func NewProductHandler(store *repository.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// ListProducts lista el catálogo completo
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.store.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct obtiene un producto por ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct crea un nuevo producto (solo admin)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if violations := validation.Check(input); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": violations})
		return
	}

	product, err := h.store.CreateProduct(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct actualiza parcialmente un producto (solo admin)
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if violations := validation.Check(update); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": violations})
		return
	}

	product, err := h.store.UpdateProduct(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct elimina un producto (solo admin)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	err := h.store.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}
	c.Status(http.StatusNoContent)
}

package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eatwise/backend/internal/domain"
)

// FoodService defines the usecase surface the handlers depend on
type FoodService interface {
	Search(ctx context.Context, query string, limit int) ([]domain.FoodItem, error)
	GetByBarcode(ctx context.Context, barcode string) (*domain.FoodItem, error)
	Create(ctx context.Context, input *domain.NewFoodInput) (*domain.FoodItem, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	foods FoodService
}

// NewHandler creates a new HTTP handler
func NewHandler(foods FoodService) *Handler {
	return &Handler{foods: foods}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "eatwise-backend",
		"version": "1.0.0",
	})
}

// SearchFoods handles GET /api/v1/foods/search?q=&limit=
func (h *Handler) SearchFoods(c *gin.Context) {
	query := c.Query("q")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	items, err := h.foods.Search(c.Request.Context(), query, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// GetFoodByBarcode handles GET /api/v1/foods/barcode/:code
func (h *Handler) GetFoodByBarcode(c *gin.Context) {
	item, err := h.foods.GetByBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateFood handles POST /api/v1/foods
func (h *Handler) CreateFood(c *gin.Context) {
	var input domain.NewFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.foods.Create(c.Request.Context(), &input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// writeError maps domain errors to HTTP status codes
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrFoodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateFood):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSourceUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

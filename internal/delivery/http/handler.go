package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autobake/backend/internal/domain"
	"github.com/autobake/backend/internal/usecase"
)

// ReloadFunc re-ingests the catalog and refreshes the matcher snapshot.
type ReloadFunc func() error

// Handler holds dependencies for HTTP handlers
type Handler struct {
	matcher *usecase.MatchingService
	reload  ReloadFunc
}

// NewHandler creates a new HTTP handler
func NewHandler(matcher *usecase.MatchingService, reload ReloadFunc) *Handler {
	return &Handler{matcher: matcher, reload: reload}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "autobake-backend",
		"version": "1.0.0",
	})
}

// matchRequestBody is the form-level match input. Numeric fields are strings
// so clients can send the skip sentinel "-".
type matchRequestBody struct {
	Prompt      string `json:"prompt"`
	Product     string `json:"product"`
	DoughWeight string `json:"doughWeight"`
	Capacity    string `json:"capacity"`
}

// Match handles machine matching requests
func (h *Handler) Match(c *gin.Context) {
	var body matchRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.matcher.MatchFromInputs(body.Prompt, body.Product, body.DoughWeight, body.Capacity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDoughWeight), errors.Is(err, domain.ErrInvalidCapacity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrNoProductIdentified), errors.Is(err, domain.ErrNoMachinesForProduct):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, buildMatchView(result))
}

// ListProducts returns the canonical product vocabulary
func (h *Handler) ListProducts(c *gin.Context) {
	products := h.matcher.Products()
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// ListMachines returns the current catalog as display rows
func (h *Handler) ListMachines(c *gin.Context) {
	records := h.matcher.Catalog()
	rows := make([]catalogRow, 0, len(records))
	for i, rec := range records {
		rows = append(rows, buildCatalogRow(i+1, rec))
	}
	c.JSON(http.StatusOK, gin.H{
		"machines": rows,
		"count":    len(rows),
	})
}

// ReloadCatalog re-ingests the catalog source. On failure the previous
// snapshot stays in service.
func (h *Handler) ReloadCatalog(c *gin.Context) {
	if err := h.reload(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog reload failed, previous snapshot still active"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "reloaded",
		"machines": len(h.matcher.Catalog()),
	})
}

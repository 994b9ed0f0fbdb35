package pricing

import (
	"errors"
	"net/http"

	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	httperr "github.com/aevon-lab/catalog-pricing/internal/core/errors"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes Queries over HTTP.
type Handler struct {
	queries Queries
	logger  *zap.Logger
}

func NewHandler(queries Queries, logger *zap.Logger) *Handler {
	return &Handler{queries: queries, logger: logger.Named("pricing_http")}
}

// RegisterRoutes registers all pricing query routes on the given router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/categories/lowest-price", h.HandleCategoryPricing)
	r.GET("/v1/categories/:name/price-summary", h.HandlePriceSummary)
	r.GET("/v1/categories/:name/price-range", h.HandlePriceRange)
	r.GET("/v1/brands/lowest-price", h.HandleLowestTotalPriceBrand)
	r.GET("/v1/brands/:id/prices", h.HandleBrandPrices)
}

// HandleCategoryPricing handles GET /v1/categories/lowest-price
func (h *Handler) HandleCategoryPricing(c *gin.Context) {
	resp, err := h.queries.CategoryPricing(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to compute category pricing")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandlePriceSummary handles GET /v1/categories/:name/price-summary
func (h *Handler) HandlePriceSummary(c *gin.Context) {
	var uri struct {
		Name string `uri:"name" binding:"required,notblank"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		invalidInput(c, "Invalid path parameters", err)
		return
	}

	resp, ok, err := h.queries.PriceSummary(c.Request.Context(), uri.Name)
	if err != nil {
		h.writeError(c, err, "Failed to compute price summary")
		return
	}
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandlePriceRange handles GET /v1/categories/:name/price-range
func (h *Handler) HandlePriceRange(c *gin.Context) {
	var uri struct {
		Name string `uri:"name" binding:"required,notblank"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		invalidInput(c, "Invalid path parameters", err)
		return
	}

	resp, err := h.queries.MinAndMaxPriceByCategoryName(c.Request.Context(), uri.Name)
	if err != nil {
		h.writeError(c, err, "Failed to compute price range")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleLowestTotalPriceBrand handles GET /v1/brands/lowest-price
// Responds 204 when no brand covers every category.
func (h *Handler) HandleLowestTotalPriceBrand(c *gin.Context) {
	resp, ok, err := h.queries.LowestTotalPriceBrand(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to compute lowest total price brand")
		return
	}
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleBrandPrices handles GET /v1/brands/:id/prices
func (h *Handler) HandleBrandPrices(c *gin.Context) {
	var uri struct {
		ID int64 `uri:"id" binding:"required,min=1"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		invalidInput(c, "Invalid brand id", err)
		return
	}

	resp, err := h.queries.BrandPrices(c.Request.Context(), uri.ID)
	if err != nil {
		h.writeError(c, err, "Failed to load brand prices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"brand_id": uri.ID, "prices": resp})
}

func invalidInput(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidInputError,
		Code:      httperr.CodeInvalidInput,
		Message:   msg,
		Details:   err.Error(),
	})
}

func (h *Handler) writeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		code := httperr.CodeCategoryNotFound
		if c.Param("id") != "" {
			code = httperr.CodeBrandNotFound
		}
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotFoundError,
			Code:      code,
			Message:   msg,
			Details:   err.Error(),
		})
	case catalog.IsInvalidState(err):
		h.logger.Error("invalid catalog state", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidStateError,
			Code:      httperr.CodeInternal,
			Message:   msg,
		})
	default:
		h.logger.Error("pricing query failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Code:      httperr.CodeInternal,
			Message:   msg,
			Details:   err.Error(),
		})
	}
}

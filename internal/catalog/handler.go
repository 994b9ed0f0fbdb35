package catalog

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	corecatalog "github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	httperr "github.com/aevon-lab/catalog-pricing/internal/core/errors"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage"
	"github.com/aevon-lab/catalog-pricing/internal/core/validation"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgInvalidID      = "Invalid id"
)

type createBrandRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

type renameBrandRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

type createProductRequest struct {
	Price      *decimal.Decimal `json:"price" binding:"required"`
	BrandID    int64            `json:"brand_id" binding:"required,min=1"`
	CategoryID int64            `json:"category_id" binding:"required,min=1"`
}

// updateProductRequest is a partial update: absent fields stay unchanged.
type updateProductRequest struct {
	Price      *decimal.Decimal `json:"price"`
	BrandID    *int64           `json:"brand_id" binding:"omitempty,min=1"`
	CategoryID *int64           `json:"category_id" binding:"omitempty,min=1"`
}

type idURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// commandError carries the structured HTTP error shape from a helper back to
// the handler.
type commandError struct {
	statusCode int
	errorType  string
	code       string
	message    string
	details    interface{}
}

func (e *commandError) Error() string {
	return e.message
}

// CreateBrandHandler handles POST /v1/brands
func (s *Service) CreateBrandHandler(c *gin.Context) {
	var req createBrandRequest
	if cerr := s.bindJSON(c, &req); cerr != nil {
		writeError(c, cerr)
		return
	}

	brand, err := s.CreateBrand(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, s.classify(err, "Failed to create brand"))
		return
	}
	c.JSON(http.StatusCreated, brand)
}

// RenameBrandHandler handles PATCH /v1/brands/:id
func (s *Service) RenameBrandHandler(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, invalidInput(msgInvalidID, err))
		return
	}
	var req renameBrandRequest
	if cerr := s.bindJSON(c, &req); cerr != nil {
		writeError(c, cerr)
		return
	}

	brand, err := s.RenameBrand(c.Request.Context(), uri.ID, req.Name)
	if err != nil {
		writeError(c, s.classify(err, "Failed to rename brand"))
		return
	}
	c.JSON(http.StatusOK, brand)
}

// DeleteBrandHandler handles DELETE /v1/brands/:id
func (s *Service) DeleteBrandHandler(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, invalidInput(msgInvalidID, err))
		return
	}

	if err := s.DeleteBrand(c.Request.Context(), uri.ID); err != nil {
		writeError(c, s.classify(err, "Failed to delete brand"))
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateProductHandler handles POST /v1/products
func (s *Service) CreateProductHandler(c *gin.Context) {
	var req createProductRequest
	if cerr := s.bindJSON(c, &req); cerr != nil {
		writeError(c, cerr)
		return
	}

	product, err := s.CreateProduct(c.Request.Context(), *req.Price, req.BrandID, req.CategoryID)
	if err != nil {
		writeError(c, s.classify(err, "Failed to create product"))
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProductHandler handles PATCH /v1/products/:id
func (s *Service) UpdateProductHandler(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, invalidInput(msgInvalidID, err))
		return
	}
	var req updateProductRequest
	if cerr := s.bindJSON(c, &req); cerr != nil {
		writeError(c, cerr)
		return
	}

	product, err := s.UpdateProduct(c.Request.Context(), uri.ID, ProductUpdate{
		Price:      req.Price,
		BrandID:    req.BrandID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeError(c, s.classify(err, "Failed to update product"))
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProductHandler handles DELETE /v1/products/:id
func (s *Service) DeleteProductHandler(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, invalidInput(msgInvalidID, err))
		return
	}

	if err := s.DeleteProduct(c.Request.Context(), uri.ID); err != nil {
		writeError(c, s.classify(err, "Failed to delete product"))
		return
	}
	c.Status(http.StatusNoContent)
}

// bindJSON reads at most maxBodySizeBytes and binds the body into dst.
func (s *Service) bindJSON(c *gin.Context, dst interface{}) *commandError {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, s.maxBodySizeBytes+1))
	if err != nil {
		s.logger.Error("failed to read request body", zap.Error(err))
		return &commandError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			code:       httperr.CodeInternal,
			message:    msgReadBodyFailed,
		}
	}
	if int64(len(body)) > s.maxBodySizeBytes {
		return &commandError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidInputError,
			code:       httperr.CodeInvalidInput,
			message:    "Request body exceeds maximum allowed size",
			details:    map[string]interface{}{"max_size_bytes": s.maxBodySizeBytes},
		}
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	if err := c.ShouldBindJSON(dst); err != nil {
		return invalidInput(msgInvalidJSON, err)
	}
	return nil
}

func invalidInput(msg string, err error) *commandError {
	return &commandError{
		statusCode: http.StatusBadRequest,
		errorType:  httperr.HttpInvalidInputError,
		code:       httperr.CodeInvalidInput,
		message:    msg,
		details:    validation.ToDetails(err),
	}
}

// classify maps command errors onto the API error shape.
func (s *Service) classify(err error, msg string) *commandError {
	notFound := func(code string) *commandError {
		return &commandError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpNotFoundError,
			code:       code,
			message:    err.Error(),
		}
	}

	switch {
	case errors.Is(err, corecatalog.ErrInvalidPrice):
		return &commandError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidInputError,
			code:       httperr.CodeInvalidPrice,
			message:    err.Error(),
		}
	case errors.Is(err, corecatalog.ErrInvalidBrandName):
		return &commandError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidInputError,
			code:       httperr.CodeInvalidBrandName,
			message:    err.Error(),
		}
	case errors.Is(err, storage.ErrDuplicate):
		return &commandError{
			statusCode: http.StatusConflict,
			errorType:  httperr.HttpConflictError,
			code:       httperr.CodeInvalidBrandName,
			message:    "Brand name already exists",
		}
	case errors.Is(err, storage.ErrInUse):
		return &commandError{
			statusCode: http.StatusConflict,
			errorType:  httperr.HttpConflictError,
			code:       httperr.CodeBrandInUse,
			message:    "Brand still has products",
		}
	case errors.Is(err, ErrBrandNotFound):
		return notFound(httperr.CodeBrandNotFound)
	case errors.Is(err, ErrCategoryNotFound):
		return notFound(httperr.CodeCategoryNotFound)
	case errors.Is(err, ErrProductNotFound):
		return notFound(httperr.CodeProductNotFound)
	case corecatalog.IsInvalidState(err):
		s.logger.Error("catalog invariant violated", zap.Error(err))
		return &commandError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInvalidStateError,
			code:       httperr.CodeInternal,
			message:    msg,
		}
	}

	s.logger.Error(msg, zap.Error(err))
	return &commandError{
		statusCode: http.StatusInternalServerError,
		errorType:  httperr.HttpInternalError,
		code:       httperr.CodeInternal,
		message:    msg,
	}
}

// writeError serializes a commandError as the JSON HTTP response.
func writeError(c *gin.Context, err *commandError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Code:      err.code,
		Message:   err.message,
		Details:   err.details,
	})
}

package errors

// Error types reported in ErrorResponse.ErrorType.
const (
	HttpInternalError     = "internal_error"
	HttpInvalidInputError = "invalid_input"
	HttpNotFoundError     = "not_found"
	HttpConflictError     = "conflict"
	HttpInvalidStateError = "invalid_state"
)

// Catalog error codes reported in ErrorResponse.Code.
const (
	CodeInvalidInput     = "COMMON-001"
	CodeInternal         = "COMMON-002"
	CodeCategoryNotFound = "CATEGORY-001"
	CodeBrandNotFound    = "BRAND-001"
	CodeInvalidBrandName = "BRAND-002"
	CodeBrandInUse       = "BRAND-003"
	CodeInvalidPrice     = "PRODUCT-001"
	CodeProductNotFound  = "PRODUCT-002"
)

// ErrorResponse is the error response body for every API error.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Code      string      `json:"code,omitempty"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

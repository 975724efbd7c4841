package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation = "https://wealthflow.app/errors/validation"
	ErrorTypeNotFound   = "https://wealthflow.app/errors/not-found"
	ErrorTypeConflict   = "https://wealthflow.app/errors/conflict"
	ErrorTypeInternal   = "https://wealthflow.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewConflictError creates a conflict error response
func NewConflictError(c echo.Context, detail string) error {
	return c.JSON(http.StatusConflict, ProblemDetails{
		Type:     ErrorTypeConflict,
		Title:    "Conflict",
		Status:   http.StatusConflict,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// fieldErrors maps domain validation errors onto the request field they concern
var fieldErrors = []struct {
	err     error
	field   string
	message string
}{
	{domain.ErrDescriptionRequired, "description", "Description is required"},
	{domain.ErrDescriptionTooLong, "description", "Description must be 255 characters or less"},
	{domain.ErrCategoryTooLong, "category", "Category must be 100 characters or less"},
	{domain.ErrNameRequired, "name", "Name is required"},
	{domain.ErrNameTooLong, "name", "Name must be 255 characters or less"},
	{domain.ErrSymbolRequired, "symbol", "Symbol is required"},
	{domain.ErrSymbolTooLong, "symbol", "Symbol must be 20 characters or less"},
	{domain.ErrInvalidAmount, "amount", "Must be a non-negative number"},
	{domain.ErrAmountOutOfRange, "amount", "Must have at most 15 integer digits and 8 decimal places"},
	{domain.ErrInvalidContribution, "amount", "Must be a positive number"},
	{domain.ErrInvalidTarget, "targetAmount", "Must be a positive number"},
	{domain.ErrInvalidQuantity, "quantity", "Must be a non-negative number"},
	{domain.ErrInvalidPrice, "price", "Must be a non-negative number"},
	{domain.ErrInvalidTransactionType, "type", "Type must be one of: income, expense"},
	{domain.ErrInvalidAssetType, "type", "Type must be one of: stock, crypto, etf, bond"},
	{domain.ErrInvalidDate, "date", "Must be in YYYY-MM-DD format"},
}

// serviceError turns an error returned by a service into a problem response.
// Anything that is not a known domain error is logged and reported as 500.
func serviceError(c echo.Context, err error, action string) error {
	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: fe.field, Message: fe.message},
			})
		}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidSnapshot):
		return NewValidationError(c, err.Error(), nil)
	case errors.Is(err, domain.ErrAssetNotFound):
		return NewNotFoundError(c, "Asset not found")
	case errors.Is(err, domain.ErrGoalNotFound):
		return NewNotFoundError(c, "Savings goal not found")
	case errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError(c, "Not found")
	case errors.Is(err, domain.ErrDuplicateID):
		return NewConflictError(c, "A record with this id already exists")
	}

	log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Failed to " + action)
	return NewInternalError(c, "Failed to "+action)
}

// invalidNumber is the response for a numeric field that does not parse
func invalidNumber(c echo.Context, field string) error {
	return NewValidationError(c, "Invalid "+field, []ValidationError{
		{Field: field, Message: "Must be a valid non-negative number"},
	})
}

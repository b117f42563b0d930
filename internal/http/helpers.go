package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/services"
	"github.com/mrlokans/library/internal/validation"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// PaginatedResponse wraps paginated data with metadata.
type PaginatedResponse struct {
	Data    any   `json:"data"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: string(services.KindValidation)})
}

// respondValidationError sends a 400 with the failed rules per field.
func respondValidationError(c *gin.Context, details []validation.FieldError) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   services.MsgInvalidInput,
		Code:    string(services.KindValidation),
		Details: details,
	})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s) [request %s]: %v", context, GetRequestID(c), err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: services.MsgInternal,
		Code:  string(services.KindInternal),
	})
}

// respondServiceError maps a service error to its HTTP status.
func respondServiceError(c *gin.Context, err error, context string) {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		respondInternalError(c, err, context)
		return
	}

	switch svcErr.Kind {
	case services.KindValidation:
		if len(svcErr.Details) > 0 {
			respondValidationError(c, svcErr.Details)
			return
		}
		respondBadRequest(c, svcErr.Message)
	case services.KindNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: svcErr.Message, Code: string(svcErr.Kind)})
	case services.KindConflict:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: svcErr.Message, Code: string(svcErr.Kind)})
	case services.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: svcErr.Message, Code: string(svcErr.Kind)})
	default:
		respondInternalError(c, err, context)
	}
}

// respondBindError reports a request that could not be decoded or failed
// its binding rules.
func respondBindError(c *gin.Context, err error) {
	if details := validation.FieldErrors(err); details != nil {
		respondValidationError(c, details)
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var dateErr *DateError
	switch {
	case errors.Is(err, io.EOF):
		respondBadRequest(c, "request body is required")
	case errors.As(err, &syntaxErr):
		respondBadRequest(c, "request body is not valid JSON")
	case errors.As(err, &typeErr):
		respondValidationError(c, []validation.FieldError{{
			Field:   typeErr.Field,
			Rule:    "type",
			Param:   typeErr.Type.String(),
			Message: typeErr.Field + " must be a " + typeErr.Type.String(),
		}})
	case errors.As(err, &dateErr):
		respondBadRequest(c, dateErr.Error())
	default:
		respondBadRequest(c, "invalid request")
	}
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message and optional data.
func respondSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message, Data: data})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, SuccessResponse{Message: message, Data: data})
}

// --- Parameter Parsing ---

// parseQueryID extracts and validates an unsigned integer ID from query parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseQueryID(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Query(paramName)
	if idStr == "" {
		respondBadRequest(c, paramName+" is required")
		return 0, false
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parseQueryInt reads an optional non-negative integer query parameter.
func parseQueryInt(c *gin.Context, paramName string, fallback int) (int, bool) {
	raw := c.Query(paramName)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return n, true
}

package models

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ApiResponse is the envelope for every JSON response. The dashboard keys off
// the success flag, so it is always serialized.
type ApiResponse struct {
	Success         bool              `json:"success"`
	Message         string            `json:"message"`
	Data            any               `json:"data,omitempty"`
	Fields          map[string]string `json:"fields,omitempty"` // field-level validation errors
	Meta            *Pagination       `json:"meta,omitempty"`
	Rate            *RateLimiter      `json:"rate_limit,omitempty"`
	RequestedEntity string            `json:"requested_entity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"5"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func requestedEntity(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.Request.Method + " " + c.FullPath()
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Success:         true,
		Message:         message,
		Data:            data,
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Success:         true,
		Message:         message,
		Data:            data,
		Meta:            meta,
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

// FieldErrorResponse reports validation failures field by field so the
// dashboard can render them inline next to the offending inputs.
func FieldErrorResponse(c *gin.Context, fields map[string]string) ApiResponse {
	return ApiResponse{
		Message:         "Validation failed",
		Fields:          fields,
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

// BindingErrors flattens a gin binding error into a field→message map.
// Non-validator errors (malformed JSON and the like) come back under "_body".
func BindingErrors(err error) map[string]string {
	fields := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["_body"] = "Invalid request body"
		return fields
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = fe.Field() + " is required"
		case "email":
			fields[fe.Field()] = "Invalid email"
		case "min":
			fields[fe.Field()] = "Minimum " + fe.Param() + " characters"
		case "oneof":
			fields[fe.Field()] = "Must be one of: " + fe.Param()
		case "url":
			fields[fe.Field()] = "Must be a valid URL"
		default:
			fields[fe.Field()] = "Invalid value"
		}
	}
	return fields
}

// AbortValidation writes a 400 with field-level errors.
func AbortValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, FieldErrorResponse(c, BindingErrors(err)))
}

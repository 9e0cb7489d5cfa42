package response

import (
	"errors"
	"net/http"
	"time"

	"gaps-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope for non-relay endpoints.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// RelayErrorResponse is the body returned when the proxy cannot relay a request.
// Browser clients parse this shape, so field names are fixed.
type RelayErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: now(),
	})
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
			RequestID: getRequestID(c),
			Timestamp: now(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
		RequestID: getRequestID(c),
		Timestamp: now(),
	})
}

// RelayError sends the relay failure envelope. Every relay failure is a 500;
// the upstream status and body travel inside the envelope.
func RelayError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, describeRelayError(err))
}

func describeRelayError(err error) RelayErrorResponse {
	resp := RelayErrorResponse{
		Error:     "unknown relay failure",
		Timestamp: now(),
	}
	if err == nil {
		return resp
	}

	resp.Error = err.Error()
	resp.Details = err.Error()

	if te, ok := apperror.AsTransport(err); ok {
		resp.Error = te.Error()
		if te.StatusCode > 0 {
			resp.Details = te.Body
		} else if te.Err != nil {
			resp.Details = te.Err.Error()
		}
		return resp
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		resp.Error = appErr.Message
		if appErr.Err != nil {
			resp.Details = appErr.Err.Error()
		} else {
			resp.Details = appErr.Code
		}
	}
	return resp
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}

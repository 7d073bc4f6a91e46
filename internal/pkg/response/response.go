package response

import (
	"errors"
	"net/http"
	"time"

	"go-gift-api/internal/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RequestIDKey is both the header and the gin context key of the request id.
const RequestIDKey = "X-Request-ID"

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		apperror.RegisterJSONFieldNames(v)
	}
}

type APIResponse struct {
	Success   bool         `json:"success"`
	Data      interface{}  `json:"data"`
	Error     *ErrorDetail `json:"error"`
	Message   string       `json:"message"`
	RequestID string       `json:"requestId"`
	Timestamp string       `json:"timestamp"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, APIResponse{
		Success:   true,
		Data:      data,
		Message:   message,
		RequestID: c.GetString(RequestIDKey),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func Error(c *gin.Context, status int, errCode string, message string, details interface{}) {
	c.JSON(status, APIResponse{
		Success: false,
		Error: &ErrorDetail{
			Code:    errCode,
			Message: message,
			Details: details,
		},
		Message:   message,
		RequestID: c.GetString(RequestIDKey),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// FromError renders err through apperror.ToHTTP. Unknown errors become a
// bare 500 so internals never reach the client.
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// BindError renders a failed ShouldBindJSON as 400. Validation failures list
// the offending fields; malformed JSON carries the decoder message.
func BindError(c *gin.Context, err error) {
	var details any = err.Error()
	if fields := apperror.ValidationDetails(err); fields != nil {
		details = fields
	}
	Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", details)
}

// Unauthenticated is the 401 for handlers reached without a user id.
func Unauthenticated(c *gin.Context) {
	Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "User not authenticated", nil)
}

// IsServerError reports whether err renders as a 5xx.
func IsServerError(err error) bool {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus >= http.StatusInternalServerError
	}
	return err != nil
}

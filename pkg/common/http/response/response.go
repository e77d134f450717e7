package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeSuccess          = 20000
	CodeParamInvalid     = 40001
	CodeValidationFailed = 40002
	CodeInternalServer   = 50000
)

var messages = map[int]string{
	CodeSuccess:          "success",
	CodeParamInvalid:     "invalid parameters",
	CodeValidationFailed: "validation failed",
	CodeInternalServer:   "internal server error",
}

var statuses = map[int]int{
	CodeSuccess:          http.StatusOK,
	CodeParamInvalid:     http.StatusBadRequest,
	CodeValidationFailed: http.StatusUnprocessableEntity,
	CodeInternalServer:   http.StatusInternalServerError,
}

// Response is the JSON envelope written by every handler.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Message returns the text for code.
func Message(code int) string {
	return messages[code]
}

// Status returns the HTTP status for code, defaulting to 500.
func Status(code int) int {
	if s, ok := statuses[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// SuccessResponse writes a success envelope with data.
func SuccessResponse(c *gin.Context, code int, data any) {
	c.JSON(Status(code), Response{
		Code:    code,
		Message: Message(code),
		Data:    data,
	})
}

// ErrorResponse aborts the request with an error envelope.
func ErrorResponse(c *gin.Context, code int, data any) {
	c.AbortWithStatusJSON(Status(code), Response{
		Code:    code,
		Message: Message(code),
		Data:    ToErrorResponse(data),
	})
}

// ToErrorResponse turns errors into their message so they survive JSON encoding.
func ToErrorResponse(v any) any {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return v
}

package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-window/pkg/common/http/response"
	"github.com/huynhanx03/go-window/pkg/common/http/validation"
)

// ParseRequest binds and validates T from the query string (GET, DELETE) or the
// JSON body. On failure the error response is written and ok is false.
func ParseRequest[T any](c *gin.Context) (*T, bool) {
	var req T

	var err error
	switch c.Request.Method {
	case http.MethodGet, http.MethodDelete:
		err = c.ShouldBindQuery(&req)
	default:
		err = c.ShouldBindJSON(&req)
	}
	if err != nil {
		response.ErrorResponse(c, response.CodeParamInvalid, err)
		return nil, false
	}

	if ok, msg := validation.IsRequestValid(req); !ok {
		response.ErrorResponse(c, response.CodeValidationFailed, msg)
		return nil, false
	}

	return &req, true
}

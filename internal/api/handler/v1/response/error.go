package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	HTTPStatusCode int    `json:"-"`
	Message        string `json:"message"`
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.Int("status", e.HTTPStatusCode),
			zap.String("path", ctx.FullPath()),
			zap.String("error", e.Message),
		)
		// Internal details stay out of the response body.
		ctx.AbortWithStatusJSON(e.HTTPStatusCode, &Err{Message: "something went wrong"})
		return
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
	}
}

func ErrWrongCredentials(error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        "invalid email or password",
	}
}

func ErrTokenInvalid(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        fmt.Sprintf("invalid token -> %v", err),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusForbidden,
		Message:        err.Error(),
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Message:        fmt.Sprintf("%v not found with %v %v", resource, key, value),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        err.Error(),
	}
}

package apperrors

import (
	"jobify_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Msg     string    `json:"msg"`
	Code    ErrorCode `json:"code"`
	Details any       `json:"details,omitempty"`
}

// HandleError writes an AppError to the response. Server-side errors are
// logged with their wrapped cause; the cause itself never leaves the process.
func HandleError(c *gin.Context, err *AppError) {
	ctx := c.Request.Context()

	if err.HTTPCode >= 500 {
		logger.CtxError(ctx, "server error",
			"code", err.Code,
			"error", err.Error(),
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(err.HTTPCode, ErrorResponse{
		Msg:     err.Message,
		Code:    err.Code,
		Details: err.Details,
	})
}

package middleware

import (
	"log/slog"
	"net/http"

	"lms-api/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors recorded on the context when the handler
// returned without writing a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// latest public error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		resp := httperr.InternalError()
		c.JSON(resp.Status, resp)
	}
}

// CustomRecovery turns a panic anywhere below it into a 500 envelope.
// Handlers behind the idempotency gate never have the panic response cached.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("Recovered from panic",
					slog.Any("panic", rec),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)))

				resp := httperr.InternalError()
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}

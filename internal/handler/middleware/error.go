package middleware

import (
	"log/slog"
	"net/http"

	"barberbook/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors recorded via httperr.AbortWithError into the
// JSON body the API promises. The newest public error wins.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic", "error", r, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}

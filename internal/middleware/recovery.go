package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akash89-eng/StockMarketAnalysis/internal/logging"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/models"
)

// Recovery catches any panic escaping a handler, logs it with full context,
// and returns the generic error envelope. Raw panic text is never echoed to
// the caller.
func Recovery(logger *logging.StandardLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Logger().Error("Recovered from panic",
					"panic", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
					Success: false,
					Error:   "internal error",
					Message: "An unexpected error occurred",
				})
			}
		}()
		c.Next()
	}
}

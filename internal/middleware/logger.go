package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request in key=value form and recovers from
// handler panics with a JSON 500.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequest(c, start, "panic", err.Error())
				log.Printf("panic_stack request_id=%s stack=%s", requestID(c), debug.Stack())

				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "Internal server error",
					},
				})
				c.Abort()
				return
			}

			kind := "request"
			if c.Writer.Status() >= http.StatusInternalServerError {
				kind = "request_error"
			}
			logRequest(c, start, kind, c.Errors.String())
		}()

		c.Next()
	}
}

func logRequest(c *gin.Context, start time.Time, kind string, errMsg string) {
	log.Printf(
		"%s status=%d method=%s path=%s client_ip=%s request_id=%s latency=%s error=%q",
		kind,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		requestID(c),
		time.Since(start),
		errMsg,
	)
}

func requestID(c *gin.Context) string {
	return c.GetString("request_id")
}

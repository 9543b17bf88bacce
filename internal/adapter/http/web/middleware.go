package web

import (
	"fmt"
	"net/http"
	"time"

	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/Temutjin2k/solotrip-connect/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, p any) {
		ctx := wrap.WithAction(c.Request.Context(), "panic_recovered")
		s.log.Error(ctx, "panic while serving request", fmt.Errorf("%v", p), "URL", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}

// requestID reuses the caller's X-Request-Id or generates one.
// The id travels to the trip API with every client call.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Writer.Header().Set(requestIDHeader, id)
		c.Request = c.Request.WithContext(wrap.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func (s *Server) logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		metrics.RecordHTTPMetrics(serviceName, c.Request.Method, path, status, time.Since(start))

		s.log.Info(c.Request.Context(), "completed",
			"method", c.Request.Method,
			"URL", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start).String(),
		)
	}
}

// requireSession runs the route guard before protected actions.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if d := s.guard.Check(); !d.Allowed {
			c.Redirect(http.StatusSeeOther, d.Redirect)
			c.Abort()
			return
		}
		c.Next()
	}
}

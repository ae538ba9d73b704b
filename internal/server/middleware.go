package server

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// accessLog logs each request and feeds the HTTP metrics.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		method := c.Request.Method
		code := c.Writer.Status()

		s.metrics.ObserveHTTP(method, route, code, latency)
		s.log.Info().
			Str("client_ip", c.ClientIP()).
			Str("method", method).
			Str("route", route).
			Int("status", code).
			Dur("latency", latency).
			Msg("[access]")
	}
}

// recovery turns a handler panic into a 500.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error().Str("panic", fmt.Sprint(r)).Bytes("stack", debug.Stack()).Msg("handler panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}

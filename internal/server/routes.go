package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/openlink/internal/auth"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/danmuck/openlink/internal/protocol/stanza"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const version = "0.1.0"

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.appeared).String(),
			"service": s.svc.Config().ServiceID,
			"version": version,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers := []gin.HandlerFunc{s.handleInspect}
	if v := auth.FromConfig(s.svc.Config().AuthToken); v != nil {
		handlers = append([]gin.HandlerFunc{requireToken(v)}, handlers...)
	}
	s.router.POST("/v1/stanzas/inspect", handlers...)
}

func requireToken(v auth.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.CheckHeader(v, c.GetHeader("Authorization")); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

func (s *Server) handleInspect(c *gin.Context) {
	report, err := s.svc.Inspect(c.Request.Body)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, protocol.ErrStanzaTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, stanza.ErrUnknownStanza):
		return http.StatusUnprocessableEntity
	case errors.Is(err, protocol.ErrMalformedXML), errors.Is(err, protocol.ErrEmptyStanza):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

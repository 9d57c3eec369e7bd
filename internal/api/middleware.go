package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/elearn-admin-gateway/internal/auth"
	"github.com/elearn-admin-gateway/internal/client"
	"github.com/elearn-admin-gateway/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const principalKey = "principal"

// AdminRequired verifies the bearer token and requires the admin role.
// Rejection happens here, before any handler runs, so an unauthorized
// request never triggers a backend fetch.
func AdminRequired(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		principal, err := verifier.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if !principal.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// principalFrom returns the verified principal set by AdminRequired.
func principalFrom(c *gin.Context) auth.Principal {
	p, _ := c.Get(principalKey)
	principal, _ := p.(auth.Principal)
	return principal
}

// requestIDMiddleware tags every request for log correlation
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("request_id", c.GetString("request_id")).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// respondError maps a service error onto the right status code. Upstream
// fetch failures become 502 unless the backend reported a specific client
// error worth passing through (404 on a missing record).
func respondError(c *gin.Context, err error) {
	if fe, ok := client.AsFetchError(err); ok {
		switch fe.Status {
		case http.StatusNotFound, http.StatusUnauthorized, http.StatusForbidden:
			c.JSON(fe.Status, gin.H{"error": fe.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": fe.Error()})
		}
		return
	}
	var me *service.MutationError
	if errors.As(err, &me) {
		c.JSON(http.StatusBadGateway, gin.H{"error": me.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

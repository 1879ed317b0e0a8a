package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/rs/zerolog/log"
)

// HostCheck answers 400 for requests whose Host header is not allowed.
// "*" allows every host and a leading dot matches the domain and all of its
// subdomains.
func HostCheck(allowed []string) gin.HandlerFunc {
	patterns := make([]string, 0, len(allowed))
	for _, h := range allowed {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			patterns = append(patterns, h)
		}
	}
	return func(c *gin.Context) {
		host := c.Request.Host
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		if hostAllowed(strings.ToLower(host), patterns) {
			c.Next()
			return
		}
		log.Warn().Str("host", c.Request.Host).Msg("Rejected request for unknown host")
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid host"})
	}
}

func hostAllowed(host string, patterns []string) bool {
	for _, p := range patterns {
		switch {
		case p == "*":
			return true
		case strings.HasPrefix(p, "."):
			if host == p[1:] || strings.HasSuffix(host, p) {
				return true
			}
		case host == p:
			return true
		}
	}
	return false
}

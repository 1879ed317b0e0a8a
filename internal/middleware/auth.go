package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	userIDKey   = "userID"
	usernameKey = "username"
)

// TokenFromHeader extracts the key from "Authorization: Token <key>".
// "Bearer <key>" is accepted as well. It returns "" for anything else.
func TokenFromHeader(header string) string {
	scheme, key, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return ""
	}
	if !strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(key)
}

// RequireToken rejects requests without a valid token and stores the
// authenticated user on the context.
func RequireToken(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := TokenFromHeader(c.GetHeader("Authorization"))
		user, err := auth.Authenticate(c.Request.Context(), key)
		if err != nil {
			if !errors.Is(err, service.ErrUnauthorized) {
				log.Error().Err(err).Msg("Token lookup failed")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication required"})
			return
		}
		c.Set(userIDKey, user.ID)
		c.Set(usernameKey, user.Username)
		c.Next()
	}
}

// UserID returns the id stored by RequireToken.
func UserID(c *gin.Context) uint {
	return c.GetUint(userIDKey)
}

func Username(c *gin.Context) string {
	return c.GetString(usernameKey)
}

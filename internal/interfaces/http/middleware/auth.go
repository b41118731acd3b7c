package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aquameter/internal/infrastructure/auth"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
	"aquameter/internal/shared/utils"
)

// Context keys populated by RequireAuth for downstream handlers.
const (
	ContextKeyUserID      = "user_id"
	ContextKeyUserRole    = "user_role"
	ContextKeyAccessLevel = "access_level"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserRole, claims.Role)
		c.Set(ContextKeyAccessLevel, claims.AccessLevel)

		c.Next()
	}
}

// RequireMaster limits a route group to master-level users. It must run
// after RequireAuth.
func (m *AuthMiddleware) RequireMaster() gin.HandlerFunc {
	return func(c *gin.Context) {
		level := c.GetString(ContextKeyAccessLevel)
		if level != "master" {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("master access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

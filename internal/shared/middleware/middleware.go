package middleware

import (
	"net/http"
	"strings"

	"ticketops/internal/shared/config"
	"ticketops/internal/shared/utils/response"
	"ticketops/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// bearerClaims extracts and verifies the access token from the
// Authorization header. Returns nil when the header is missing,
// malformed, expired, or carries a refresh token.
func bearerClaims(c *gin.Context, cfg *config.Config) jwt.MapClaims {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil
	}
	scheme, raw, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return nil
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "access" {
		return nil
	}
	return claims
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) {
	c.Set("user_id", claims["user_id"])
	c.Set("user_email", claims["email"])
	c.Set("user_role", claims["role"])
}

func unauthorized(c *gin.Context, msg string) {
	response.RespondJSON(c, "error", http.StatusUnauthorized, msg, nil, nil)
	c.Abort()
}

// JWTAuth rejects requests without a valid access token.
func JWTAuth() gin.HandlerFunc {
	return JWTAuthWithConfig(config.Load())
}

func JWTAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := bearerClaims(c, cfg)
		if claims == nil {
			unauthorized(c, "invalid or missing access token")
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth populates identity when a valid token is present and
// passes the request through either way.
func OptionalAuth() gin.HandlerFunc {
	return OptionalAuthWithConfig(config.Load())
}

func OptionalAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := bearerClaims(c, cfg); claims != nil {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// RequireRoles passes only operators whose role is in the list. Must
// run after JWTAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get("user_role")
		if !exists {
			unauthorized(c, "user role not found in context")
			return
		}

		for _, role := range roles {
			if current == role {
				c.Next()
				return
			}
		}

		response.RespondJSON(c, "error", http.StatusForbidden, "insufficient permissions", nil, nil)
		c.Abort()
	}
}

// RequireAdmin gates provisioning and destructive admin routes.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(string(users.RoleAdmin))
}

// RequireStaff allows any console operator role through. Staff covers
// the check-in desk; organizers and admins inherit it.
func RequireStaff() gin.HandlerFunc {
	return RequireRoles(string(users.RoleAdmin), string(users.RoleOrganizer), string(users.RoleStaff))
}

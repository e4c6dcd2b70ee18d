package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/TCUnion/power/internal/errors"
)

const claimsKey = "auth_claims"

// AuthMiddleware validates the Bearer token and stores the claims in the
// gin context for downstream handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apierrors.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := ValidateJWT(parts[1])
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the claims stored by AuthMiddleware, or nil outside an
// authenticated request.
func GetClaims(c *gin.Context) *Claims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}

	claims, ok := value.(*Claims)
	if !ok {
		return nil
	}

	return claims
}

// GetStravaID returns the authenticated athlete's Strava ID, or "" when the
// request carries no valid session.
func GetStravaID(c *gin.Context) string {
	claims := GetClaims(c)
	if claims == nil {
		return ""
	}

	return claims.StravaID
}

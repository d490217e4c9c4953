package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-course-platform/internal/core/auth"
	"go-course-platform/internal/domain"
	resp "go-course-platform/internal/transport/http/response"
)

// KeyUserID is where the gate stores the resolved subject for handlers.
const KeyUserID = "userId"

// AuthJWT is the authorization gate: it extracts the bearer token, verifies
// it locally with the shared secret, and aborts before any business logic
// runs. Every failure — missing header, bad signature, expiry — surfaces as
// the same UNAUTHENTICATED response.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			status, body := resp.FromError(domain.E(domain.CodeUnauthenticated, "missing token"))
			c.AbortWithStatusJSON(status, body)
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			status, body := resp.FromError(err)
			c.AbortWithStatusJSON(status, body)
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-course-platform/internal/domain"
	resp "go-course-platform/internal/transport/http/response"
)

func SimpleRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp.Fail(domain.CodeInternal))
			}
		}()
		c.Next()
	}
}

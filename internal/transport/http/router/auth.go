package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-course-platform/internal/core/auth"
	"go-course-platform/internal/transport/http/handler"
	mdw "go-course-platform/internal/transport/http/middleware"
)

// NewAuthEngine builds the identity service router: registration, login
// (token issuance) and /me.
func NewAuthEngine(l *zap.Logger, authH *handler.AuthHandler, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// Credential endpoints get a tighter per-IP bucket on top of the
	// global limiter to slow down brute forcing.
	pub := api.Group("/auth", mdw.RateLimitPerIP(10, 20))
	pub.POST("/register", authH.Register)
	pub.POST("/login", authH.Login)

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter))
	authed.GET("/me", authH.Me)

	return r
}

package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-course-platform/internal/core/auth"
	"go-course-platform/internal/transport/http/handler"
	mdw "go-course-platform/internal/transport/http/middleware"
)

// NewEnrollEngine builds the enrollment service router. It verifies tokens
// locally through the gate; it never talks to the auth service.
func NewEnrollEngine(l *zap.Logger, courseH *handler.CourseHandler, enrollH *handler.EnrollmentHandler, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// Course browsing is public.
	api.GET("/courses", courseH.List)
	api.GET("/courses/:id", courseH.Get)

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter))
	authed.POST("/courses", courseH.Create)
	authed.POST("/enrollments", enrollH.Enroll)
	authed.GET("/enrollments", enrollH.List)
	authed.POST("/enrollments/:id/cancel", enrollH.Cancel)
	authed.POST("/enrollments/:id/complete", enrollH.Complete)

	return r
}

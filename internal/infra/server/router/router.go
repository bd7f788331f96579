// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pitmydoro/backend/internal/integration/entrypoint/controller"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	userController     *controller.UserController
	profileController  *controller.ProfileController
	settingsController *controller.SettingsController
	rateLimiter        *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
// Controllers left nil are not routed.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	profileController *controller.ProfileController,
	settingsController *controller.SettingsController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		userController:     userController,
		profileController:  profileController,
		settingsController: settingsController,
		rateLimiter:        rateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	if environment == "test" {
		r.engine = gin.New()
		r.engine.Use(gin.Recovery())
	} else {
		r.engine = gin.Default()
	}

	if r.rateLimiter == nil {
		r.rateLimiter = middleware.NewRateLimiter()
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.GET("/health", r.healthController.Check)

	if r.authController != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.rateLimiter.Middleware(middleware.ScopeRegister), r.authController.Register)
			auth.POST("/login", r.rateLimiter.Middleware(middleware.ScopeLogin), r.authController.Login)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authController.Logout)
			auth.POST("/forgot-password", r.rateLimiter.Middleware(middleware.ScopeForgotPassword), r.authController.ForgotPassword)
			auth.POST("/reset-password", r.authController.ResetPassword)
			auth.POST("/password-strength", r.rateLimiter.Middleware(middleware.ScopePasswordStrength), r.authController.PasswordStrength)
		}
	}

	if r.authMiddleware == nil {
		return
	}

	if r.userController != nil {
		users := v1.Group("/users")
		users.Use(r.authMiddleware.Authenticate())
		{
			users.GET("/me", r.userController.Me)
			users.PATCH("/me/preferences", r.userController.UpdatePreferences)
			users.POST("/me/password", r.userController.ChangePassword)
			users.DELETE("/me", r.userController.DeleteAccount)
		}
	}

	if r.profileController != nil {
		profile := v1.Group("/profile")
		profile.Use(r.authMiddleware.Authenticate())
		{
			profile.GET("", r.profileController.Get)
			profile.PATCH("", r.profileController.Update)
		}
	}

	if r.settingsController != nil {
		settings := v1.Group("/settings")
		settings.Use(r.authMiddleware.Authenticate())
		{
			settings.GET("", r.settingsController.Get)
			settings.PATCH("", r.settingsController.Update)
		}
	}
}

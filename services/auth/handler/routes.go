// Package handler wires the auth endpoints onto the echo server.
package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kiranakart/auth-service/internal/pkg/middleware"
	"github.com/kiranakart/auth-service/internal/pkg/models"
	handlerHTTP "github.com/kiranakart/auth-service/services/auth/handler/http"
)

// RegisterRoutes registers all auth service routes
func RegisterRoutes(e *echo.Echo, h *handlerHTTP.AuthHandler, cfg *models.Config) {
	authGroup := e.Group("/auth")

	// credential submission
	authGroup.POST("/login", h.Login)
	authGroup.POST("/admin/login", h.AdminLogin)
	authGroup.POST("/register", h.Register)

	// second factor
	authGroup.POST("/otp/send", h.SendOTP)
	authGroup.POST("/otp/verify", h.VerifyOTP)
	authGroup.POST("/otp/resend", h.ResendOTP)
	authGroup.POST("/otp/cancel", h.CancelOTP)
	authGroup.GET("/otp", h.ChallengeState)

	// sub-admin self-registration
	authGroup.POST("/admin/signup", h.RegisterSubAdmin)
	authGroup.POST("/admin/signup/validate-email", h.ValidateSubAdminEmail)

	// password reset
	authGroup.POST("/reset/email", h.ResetSubmitEmail)
	authGroup.POST("/reset/otp", h.ResetSubmitOTP)
	authGroup.POST("/reset/password", h.ResetSubmitPassword)
	authGroup.POST("/reset/resend", h.ResetResend)
	authGroup.POST("/reset/back", h.ResetBack)
	authGroup.GET("/reset", h.ResetState)

	// session lifecycle
	authGroup.GET("/session", h.GetSession)
	authGroup.POST("/logout", h.Logout)

	// allow-list management, super-admin only
	adminGroup := e.Group("/admin/sub-admins",
		middleware.JWTAuthMiddleware(cfg.JWT),
		middleware.RequireRole(models.RoleSuperAdmin))
	adminGroup.GET("", h.ListSubAdmins)
	adminGroup.POST("", h.CreateSubAdmin)
	adminGroup.DELETE("/:id", h.RemoveSubAdmin)
}

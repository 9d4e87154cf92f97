package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jayeshafre/jwt-auth-app/internal/auth"
	"github.com/jayeshafre/jwt-auth-app/internal/domain"
	"github.com/jayeshafre/jwt-auth-app/internal/service"
	"github.com/jayeshafre/jwt-auth-app/pkg/health"
	"github.com/jayeshafre/jwt-auth-app/pkg/middleware"
)

// NewRouter creates a chi router with all auth service routes registered.
func NewRouter(
	authService *service.AuthService,
	jwtManager *auth.JWTManager,
	healthHandler *health.Handler,
	logger *slog.Logger,
	corsConfig CORSConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(CORS(corsConfig))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Tracing("auth"))
	r.Use(middleware.PrometheusMetrics("auth"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Token validator that bridges to our internal JWTManager.
	tokenValidator := func(token string) (*middleware.Claims, error) {
		claims, err := jwtManager.ValidateAccessToken(token)
		if err != nil {
			return nil, err
		}
		return &middleware.Claims{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		}, nil
	}

	authHandler := NewAuthHandler(authService, logger)
	profileHandler := NewProfileHandler(authService)

	r.Route("/api/auth", func(r chi.Router) {
		r.Get("/health", authHandler.Health)

		// Public endpoints
		r.Group(func(r chi.Router) {
			r.Use(ContentTypeJSON)

			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		// Endpoints requiring a valid access token
		r.Group(func(r chi.Router) {
			r.Use(ContentTypeJSON)
			r.Use(middleware.Auth(tokenValidator))

			r.Post("/logout", authHandler.Logout)
			r.Post("/change-password", authHandler.ChangePassword)

			r.Get("/profile", profileHandler.GetProfile)
			r.Put("/profile", profileHandler.UpdateProfile)
			r.Patch("/profile", profileHandler.UpdateProfile)
		})
	})

	// Admin endpoints (role restricted)
	adminHandler := NewAdminHandler(authService)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(middleware.Auth(tokenValidator))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.RoleAdmin, domain.RoleModerator))

			r.Get("/users", adminHandler.ListUsers)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.RoleAdmin))

			r.Put("/users/{id}/role", adminHandler.SetUserRole)
			r.Put("/users/{id}/status", adminHandler.SetUserStatus)
			r.Put("/users/{id}/verified", adminHandler.SetUserVerified)
		})
	})

	return r
}

// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pitmydoro/backend/config"
	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/application/usecase/auth"
	"github.com/pitmydoro/backend/internal/application/usecase/profile"
	"github.com/pitmydoro/backend/internal/application/usecase/settings"
	"github.com/pitmydoro/backend/internal/infra/cache"
	"github.com/pitmydoro/backend/internal/infra/server/router"
	"github.com/pitmydoro/backend/internal/integration/adapters"
	"github.com/pitmydoro/backend/internal/integration/email"
	"github.com/pitmydoro/backend/internal/integration/email/templates"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/controller"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/middleware"
	"github.com/pitmydoro/backend/internal/integration/persistence"
)

// Options carries optional infrastructure. Zero values select fallbacks:
// no Redis means in-memory rate limiting, no sender means one built from config.
type Options struct {
	Redis           *redis.Client
	EmailSender     adapter.EmailSender
	PasswordService adapter.PasswordService
	DBHealthCheck   controller.HealthChecker
}

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	DB             *gorm.DB
	Router         *router.Router
	EmailWorker    *email.Worker
	SessionCleaner *adapters.SessionCleaner
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	profileRepo := persistence.NewProfileRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Services
	passwordService := opts.PasswordService
	if passwordService == nil {
		passwordService = adapters.NewPasswordService()
	}
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, adapters.TokenDurations{
		Access:  cfg.JWT.AccessTokenExpiry,
		Refresh: cfg.JWT.RefreshTokenExpiry,
	}, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	emailService := email.NewService(emailQueueRepo)

	sender, err := newEmailSender(cfg, opts.EmailSender)
	if err != nil {
		return nil, err
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval:    cfg.Email.PollInterval,
		BatchSize:       cfg.Email.BatchSize,
		CleanupInterval: cfg.Email.CleanupInterval,
		RetentionDays:   cfg.Email.RetentionDays,
	})

	defaultTeam := cfg.Defaults.FavoriteTeam

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, profileRepo, accountRepo, passwordService, tokenService, emailService, defaultTeam, cfg.Email.AppBaseURL)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, profileRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, profileRepo, passwordService, resetTokenService, tokenService, emailService)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, profileRepo, passwordService, tokenService, emailService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, accountRepo, passwordService, tokenService)
	evaluatePasswordUseCase := auth.NewEvaluatePasswordUseCase(passwordService)

	// Profile and settings use cases
	getUserUseCase := profile.NewGetUserUseCase(userRepo, profileRepo)
	getProfileUseCase := profile.NewGetProfileUseCase(profileRepo)
	updateProfileUseCase := profile.NewUpdateProfileUseCase(profileRepo)
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo, defaultTeam)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo, defaultTeam)
	updatePreferencesUseCase := settings.NewUpdatePreferencesUseCase(userRepo)

	// Controllers
	dbHealthCheck := opts.DBHealthCheck
	if dbHealthCheck == nil {
		dbHealthCheck = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}
	var cacheHealthCheck controller.HealthChecker
	if opts.Redis != nil {
		cacheHealthCheck = cache.HealthCheck(opts.Redis)
	}
	healthController := controller.NewHealthController(dbHealthCheck, cacheHealthCheck)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
		evaluatePasswordUseCase,
	)
	userController := controller.NewUserController(
		getUserUseCase,
		updatePreferencesUseCase,
		changePasswordUseCase,
		deleteAccountUseCase,
	)
	profileController := controller.NewProfileController(getProfileUseCase, updateProfileUseCase)
	settingsController := controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)

	// Middleware
	var limitStore middleware.LimitStore
	if opts.Redis != nil {
		limitStore = middleware.NewRedisStore(opts.Redis)
	}
	rateLimiter := middleware.NewRateLimiterWithConfig(limitStore, middleware.RateLimiterConfig{
		MaxAttempts: cfg.RateLimit.MaxAttempts,
		Window:      cfg.RateLimit.Window,
		Enabled:     cfg.RateLimit.Enabled,
		ScopeLimits: map[string]int{
			middleware.ScopePasswordStrength: cfg.RateLimit.StrengthMaxAttempts,
		},
	})
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		profileController,
		settingsController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:         cfg,
		DB:             db,
		Router:         r,
		EmailWorker:    worker,
		SessionCleaner: adapters.NewSessionCleaner(tokenRepo, cfg.JWT.CleanupInterval),
	}, nil
}

// newEmailSender prefers an explicit sender, then Resend, then the logging mock.
func newEmailSender(cfg *config.Config, explicit adapter.EmailSender) (adapter.EmailSender, error) {
	if explicit != nil {
		return explicit, nil
	}
	if cfg.Email.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, emails will not be delivered")
		return email.NewMockEmailSender(), nil
	}
	return email.NewResendClientWithBaseURL(
		cfg.Email.ResendAPIKey,
		cfg.Email.FromName,
		cfg.Email.FromEmail,
		cfg.Email.ResendBaseURL,
	)
}

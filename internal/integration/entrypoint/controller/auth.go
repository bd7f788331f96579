package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitmydoro/backend/internal/application/usecase/auth"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	registerUseCase         *auth.RegisterUserUseCase
	loginUseCase            *auth.LoginUserUseCase
	refreshTokenUseCase     *auth.RefreshTokenUseCase
	logoutUseCase           *auth.LogoutUserUseCase
	forgotPasswordUseCase   *auth.ForgotPasswordUseCase
	resetPasswordUseCase    *auth.ResetPasswordUseCase
	evaluatePasswordUseCase *auth.EvaluatePasswordUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	refreshTokenUseCase *auth.RefreshTokenUseCase,
	logoutUseCase *auth.LogoutUserUseCase,
	forgotPasswordUseCase *auth.ForgotPasswordUseCase,
	resetPasswordUseCase *auth.ResetPasswordUseCase,
	evaluatePasswordUseCase *auth.EvaluatePasswordUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase:         registerUseCase,
		loginUseCase:            loginUseCase,
		refreshTokenUseCase:     refreshTokenUseCase,
		logoutUseCase:           logoutUseCase,
		forgotPasswordUseCase:   forgotPasswordUseCase,
		resetPasswordUseCase:    resetPasswordUseCase,
		evaluatePasswordUseCase: evaluatePasswordUseCase,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, domainerror.ErrCodeMissingFields, err)
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	profile := dto.ToProfileResponse(output.Profile)
	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		AuthResponse: dto.AuthResponse{
			AccessToken:  output.AccessToken,
			RefreshToken: output.RefreshToken,
			User:         dto.ToUserResponse(output.User),
			Profile:      &profile,
		},
		Settings:         dto.ToSettingsResponse(output.Settings),
		PasswordStrength: dto.ToPasswordStrengthResponse(output.Strength),
	})
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, domainerror.ErrCodeMissingFields, err)
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         dto.ToUserResponse(output.User),
	})
}

// RefreshToken handles POST /auth/refresh requests.
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, domainerror.ErrCodeMissingToken, err)
		return
	}

	output, err := c.refreshTokenUseCase.Execute(ctx.Request.Context(), auth.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Logout handles POST /auth/logout requests. It always succeeds.
func (c *AuthController) Logout(ctx *gin.Context) {
	message := "Successfully logged out"

	var req dto.LogoutRequest
	if err := ctx.ShouldBindJSON(&req); err == nil {
		output, _ := c.logoutUseCase.Execute(ctx.Request.Context(), auth.LogoutUserInput{
			RefreshToken: req.RefreshToken,
		})
		if output != nil {
			message = output.Message
		}
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// ForgotPassword handles POST /auth/forgot-password requests.
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, domainerror.ErrCodeInvalidEmail, err)
		return
	}

	output, err := c.forgotPasswordUseCase.Execute(ctx.Request.Context(), auth.ForgotPasswordInput{
		Email: req.Email,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// ResetPassword handles POST /auth/reset-password requests.
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, domainerror.ErrCodeMissingFields, err)
		return
	}

	output, err := c.resetPasswordUseCase.Execute(ctx.Request.Context(), auth.ResetPasswordInput{
		Token:           req.Token,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// PasswordStrength handles POST /auth/password-strength requests.
// Any string is accepted, so only malformed JSON is rejected.
func (c *AuthController) PasswordStrength(ctx *gin.Context) {
	var req dto.PasswordStrengthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, domainerror.ErrCodeMissingFields, err)
		return
	}

	strength := c.evaluatePasswordUseCase.Execute(req.Password)
	ctx.JSON(http.StatusOK, dto.ToPasswordStrengthResponse(strength))
}

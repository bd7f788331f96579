package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitmydoro/backend/internal/application/usecase/auth"
	"github.com/pitmydoro/backend/internal/application/usecase/profile"
	"github.com/pitmydoro/backend/internal/application/usecase/settings"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/dto"
)

// UserController handles the signed-in user's account endpoints.
type UserController struct {
	getUserUseCase           *profile.GetUserUseCase
	updatePreferencesUseCase *settings.UpdatePreferencesUseCase
	changePasswordUseCase    *auth.ChangePasswordUseCase
	deleteAccountUseCase     *auth.DeleteAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getUserUseCase *profile.GetUserUseCase,
	updatePreferencesUseCase *settings.UpdatePreferencesUseCase,
	changePasswordUseCase *auth.ChangePasswordUseCase,
	deleteAccountUseCase *auth.DeleteAccountUseCase,
) *UserController {
	return &UserController{
		getUserUseCase:           getUserUseCase,
		updatePreferencesUseCase: updatePreferencesUseCase,
		changePasswordUseCase:    changePasswordUseCase,
		deleteAccountUseCase:     deleteAccountUseCase,
	}
}

// Me handles GET /users/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getUserUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := dto.MeResponse{User: dto.ToUserResponse(output.User)}
	if output.Profile != nil {
		p := dto.ToProfileResponse(output.Profile)
		resp.Profile = &p
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdatePreferences handles PATCH /users/me/preferences requests.
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, domainerror.ErrCodeMissingFields, err)
		return
	}

	user, err := c.updatePreferencesUseCase.Execute(ctx.Request.Context(), settings.UpdatePreferencesInput{
		UserID:   userID,
		Theme:    req.Theme,
		Language: req.Language,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ChangePassword handles POST /users/me/password requests.
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, domainerror.ErrCodeMissingFields, err)
		return
	}

	output, err := c.changePasswordUseCase.Execute(ctx.Request.Context(), auth.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChangePasswordResponse{
		TokenResponse: dto.TokenResponse{
			AccessToken:  output.AccessToken,
			RefreshToken: output.RefreshToken,
		},
		PasswordStrength: dto.ToPasswordStrengthResponse(output.Strength),
	})
}

// DeleteAccount handles DELETE /users/me requests.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.DeleteAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, domainerror.ErrCodeMissingFields, err)
		return
	}

	err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), auth.DeleteAccountInput{
		UserID:       userID,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

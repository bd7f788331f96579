package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitmydoro/backend/internal/application/usecase/settings"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles Pomodoro settings endpoints.
type SettingsController struct {
	getSettingsUseCase    *settings.GetSettingsUseCase
	updateSettingsUseCase *settings.UpdateSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getSettingsUseCase *settings.GetSettingsUseCase,
	updateSettingsUseCase *settings.UpdateSettingsUseCase,
) *SettingsController {
	return &SettingsController{
		getSettingsUseCase:    getSettingsUseCase,
		updateSettingsUseCase: updateSettingsUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	s, err := c.getSettingsUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(s))
}

// Update handles PATCH /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, domainerror.ErrCodeMissingFields, err)
		return
	}

	s, err := c.updateSettingsUseCase.Execute(ctx.Request.Context(), settings.UpdateSettingsInput{
		UserID:            userID,
		SessionMinutes:    req.SessionMinutes,
		ShortBreakMinutes: req.ShortBreakMinutes,
		LongBreakMinutes:  req.LongBreakMinutes,
		EnableSounds:      req.EnableSounds,
		Volume:            req.Volume,
		SoundCues:         req.SoundCues,
		CurrentTeam:       req.CurrentTeam,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(s))
}

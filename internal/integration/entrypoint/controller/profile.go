package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitmydoro/backend/internal/application/usecase/profile"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles profile endpoints.
type ProfileController struct {
	getProfileUseCase    *profile.GetProfileUseCase
	updateProfileUseCase *profile.UpdateProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getProfileUseCase *profile.GetProfileUseCase,
	updateProfileUseCase *profile.UpdateProfileUseCase,
) *ProfileController {
	return &ProfileController{
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
	}
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	p, err := c.getProfileUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(p))
}

// Update handles PATCH /profile requests.
func (c *ProfileController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, domainerror.ErrCodeMissingFields, err)
		return
	}

	p, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), profile.UpdateProfileInput{
		UserID:       userID,
		Username:     req.Username,
		DisplayName:  req.DisplayName,
		Bio:          req.Bio,
		PhotoURL:     req.PhotoURL,
		CoverURL:     req.CoverURL,
		Location:     req.Location,
		FavoriteTeam: req.FavoriteTeam,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(p))
}

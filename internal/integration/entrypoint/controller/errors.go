// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/dto"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/middleware"
)

// respondError writes the coded domain error carried by err, or a generic 500.
func respondError(ctx *gin.Context, err error) {
	var (
		authErr     *domainerror.AuthError
		profileErr  *domainerror.ProfileError
		settingsErr *domainerror.SettingsError
	)

	switch {
	case errors.As(err, &authErr):
		ctx.JSON(statusForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
	case errors.As(err, &profileErr):
		ctx.JSON(statusForProfileError(profileErr.Code), dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
	case errors.As(err, &settingsErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
	default:
		slog.Error("request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func respondInvalidBody(ctx *gin.Context, code domainerror.AuthErrorCode, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(code),
		Details: err.Error(),
	})
}

// requireUserID reads the authenticated user or writes a 401.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return id, false
	}
	return id, true
}

func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodePasswordMismatch,
		domainerror.ErrCodeInvalidResetToken,
		domainerror.ErrCodeExpiredResetToken,
		domainerror.ErrCodeInvalidConfirmation:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func statusForProfileError(code domainerror.ProfileErrorCode) int {
	switch code {
	case domainerror.ErrCodeUsernameTaken:
		return http.StatusConflict
	case domainerror.ErrCodeProfileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

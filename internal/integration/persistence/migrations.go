package persistence

import "github.com/pitmydoro/backend/internal/integration/persistence/model"

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.ProfileModel{},
		&model.SettingsModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.EmailQueueModel{},
	}
}

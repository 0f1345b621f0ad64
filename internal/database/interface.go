package database

import "context"

// SettingsRepository defines the preference operations the UI relies on.
//
//go:generate mockgen -source=interface.go -destination=../tui/mock_settings_test.go -package=tui
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

var _ SettingsRepository = (*Database)(nil)

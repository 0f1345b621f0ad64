package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/akyairhashvil/lapwatch/internal/util"
)

// GetSetting returns the stored value for key. The bool is false when the
// key is unset or cannot be read.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	if d == nil || d.DB == nil {
		return "", false
	}
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			util.LogError("get setting "+key, err)
		}
		return "", false
	}
	if !value.Valid {
		return "", false
	}
	return value.String, true
}

// SetSetting stores value under key, replacing any previous value.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	if d == nil || d.DB == nil {
		return wrapSettingErr("set", key, ErrNotConnected)
	}
	if strings.TrimSpace(key) == "" {
		return wrapSettingErr("set", key, ErrEmptyKey)
	}
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return wrapSettingErr("set", key, err)
}

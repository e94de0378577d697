package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/denmor86/points-bridge/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	GetSetting = `SELECT value FROM SETTINGS WHERE key=$1;`
	SetSetting = `INSERT INTO SETTINGS (key, value)
					VALUES ($1, $2)
					ON CONFLICT (key) DO UPDATE SET value = $2;`
)

// Ключи настроек
const (
	SettingIntakeEnabled  = "intake_enabled"
	SettingDepositCap     = "deposit_cap"
	SettingDeliveryCursor = "delivery_cursor"
)

type SettingsDatabase struct {
	DB *Database
}

// Создание хранилища
func NewSettingsStorage(db *Database) SettingsStorage {
	return &SettingsDatabase{DB: db}
}

func (s *SettingsDatabase) getValue(ctx context.Context, key string) (string, error) {
	var value string
	err := s.DB.Pool.QueryRow(ctx, GetSetting, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, nil
}

func (s *SettingsDatabase) GetIntakeSettings(ctx context.Context) (*models.IntakeSettings, error) {
	enabled, err := s.getValue(ctx, SettingIntakeEnabled)
	if err != nil {
		return nil, err
	}
	capValue, err := s.getValue(ctx, SettingDepositCap)
	if err != nil {
		return nil, err
	}

	settings := &models.IntakeSettings{Enabled: enabled != "false", DepositCap: 0}
	if capValue != "" {
		depositCap, err := strconv.ParseInt(capValue, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid deposit cap %q: %w", capValue, err)
		}
		settings.DepositCap = depositCap
	}
	return settings, nil
}

// GetDeliveryCursor — последний обработанный идентификатор сообщения.
// Хранится в БД, а не в памяти процесса: перезапуск продолжает с того же места.
func (s *SettingsDatabase) GetDeliveryCursor(ctx context.Context) (string, error) {
	return s.getValue(ctx, SettingDeliveryCursor)
}

func (s *SettingsDatabase) SetDeliveryCursor(ctx context.Context, cursor string) error {
	_, err := s.DB.Pool.Exec(ctx, SetSetting, SettingDeliveryCursor, cursor)
	if err != nil {
		return fmt.Errorf("failed to set delivery cursor: %w", err)
	}
	return nil
}

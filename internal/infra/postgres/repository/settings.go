package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/postgres"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository provides access to user settings data in the database.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository with the provided database pool.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create creates default settings for a user.
func (r *SettingsRepository) Create(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO user_settings (
			user_id, language_code, calculation_method, created_at, updated_at
		) VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, userID, entities.LanguageBengali, entities.DefaultCalculationMethod)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByUserID retrieves settings for a user.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
		SELECT user_id, name, language_code, calculation_method, latitude, longitude,
		       city, onboarded, dark_mode, prayer_alerts, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var settings entities.UserSettings
	var lang string
	var lat, lng pgtype.Float8

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.Name,
		&lang,
		&settings.CalculationMethod,
		&lat,
		&lng,
		&settings.City,
		&settings.Onboarded,
		&settings.DarkMode,
		&settings.PrayerAlerts,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	settings.Language = entities.Language(lang)
	if lat.Valid && lng.Valid {
		settings.Location = &entities.GeoCoordinate{Latitude: lat.Float64, Longitude: lng.Float64}
	}

	return &settings, nil
}

// CompleteOnboarding stores the user's name and marks onboarding as done.
func (r *SettingsRepository) CompleteOnboarding(ctx context.Context, userID int64, name string) error {
	query := `
		UPDATE user_settings
		SET name = $1, onboarded = TRUE, updated_at = $2
		WHERE user_id = $3
	`
	return r.exec(ctx, "complete onboarding", query, name, time.Now(), userID)
}

// UpdateName updates the display name.
func (r *SettingsRepository) UpdateName(ctx context.Context, userID int64, name string) error {
	query := `
		UPDATE user_settings
		SET name = $1, updated_at = $2
		WHERE user_id = $3
	`
	return r.exec(ctx, "update name", query, name, time.Now(), userID)
}

// UpdateLanguage updates the translation language.
func (r *SettingsRepository) UpdateLanguage(ctx context.Context, userID int64, lang entities.Language) error {
	query := `
		UPDATE user_settings
		SET language_code = $1, updated_at = $2
		WHERE user_id = $3
	`
	return r.exec(ctx, "update language", query, string(lang), time.Now(), userID)
}

// UpdateCalculationMethod updates the prayer-time calculation method.
func (r *SettingsRepository) UpdateCalculationMethod(ctx context.Context, userID int64, method int) error {
	query := `
		UPDATE user_settings
		SET calculation_method = $1, updated_at = $2
		WHERE user_id = $3
	`
	return r.exec(ctx, "update calculation method", query, method, time.Now(), userID)
}

// UpdateLocation stores the observer location and its display name.
func (r *SettingsRepository) UpdateLocation(ctx context.Context, userID int64, coord entities.GeoCoordinate, city string) error {
	query := `
		UPDATE user_settings
		SET latitude = $1, longitude = $2, city = $3, updated_at = $4
		WHERE user_id = $5
	`
	return r.exec(ctx, "update location", query, coord.Latitude, coord.Longitude, city, time.Now(), userID)
}

// ToggleDarkMode flips the theme flag and returns the new value.
func (r *SettingsRepository) ToggleDarkMode(ctx context.Context, userID int64) (bool, error) {
	query := `
		UPDATE user_settings
		SET dark_mode = NOT dark_mode, updated_at = $1
		WHERE user_id = $2
		RETURNING dark_mode
	`
	return r.toggle(ctx, "toggle dark mode", query, userID)
}

// TogglePrayerAlerts flips the prayer notification flag and returns the new value.
func (r *SettingsRepository) TogglePrayerAlerts(ctx context.Context, userID int64) (bool, error) {
	query := `
		UPDATE user_settings
		SET prayer_alerts = NOT prayer_alerts, updated_at = $1
		WHERE user_id = $2
		RETURNING prayer_alerts
	`
	return r.toggle(ctx, "toggle prayer alerts", query, userID)
}

func (r *SettingsRepository) exec(ctx context.Context, op, query string, args ...any) error {
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

func (r *SettingsRepository) toggle(ctx context.Context, op, query string, userID int64) (bool, error) {
	var value bool
	err := r.db.QueryRow(ctx, query, time.Now(), userID).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrSettingsNotFound
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return value, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/postgres/repository"
)

const maxNameLength = 64

var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidLanguage = errors.New("unsupported language")
	ErrInvalidMethod   = errors.New("unsupported calculation method")
)

type SettingsService struct {
	repository SettingsRepository
}

func NewSettingsService(repository SettingsRepository) *SettingsService {
	return &SettingsService{repository: repository}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			// Create default settings.
			if err := s.repository.Create(ctx, userID); err != nil {
				return nil, err
			}
			// Retrieve newly created settings.
			return s.repository.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	return settings, nil
}

// CompleteOnboarding stores the name entered on the welcome screen.
func (s *SettingsService) CompleteOnboarding(ctx context.Context, userID int64, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return fmt.Errorf("get settings: %w", err)
	}
	return s.repository.CompleteOnboarding(ctx, userID, name)
}

func (s *SettingsService) UpdateName(ctx context.Context, userID int64, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	return s.repository.UpdateName(ctx, userID, name)
}

func (s *SettingsService) UpdateLanguage(ctx context.Context, userID int64, lang entities.Language) error {
	if !lang.Valid() {
		return ErrInvalidLanguage
	}
	return s.repository.UpdateLanguage(ctx, userID, lang)
}

func (s *SettingsService) UpdateCalculationMethod(ctx context.Context, userID int64, method int) error {
	if _, ok := entities.LookupCalculationMethod(method); !ok {
		return ErrInvalidMethod
	}
	return s.repository.UpdateCalculationMethod(ctx, userID, method)
}

// UpdateLocation stores a shared location. An empty city is shown as coordinates.
func (s *SettingsService) UpdateLocation(ctx context.Context, userID int64, coord entities.GeoCoordinate, city string) error {
	if err := coord.Validate(); err != nil {
		return err
	}
	city = strings.TrimSpace(city)
	if city == "" {
		city = coord.String()
	}
	return s.repository.UpdateLocation(ctx, userID, coord, city)
}

func (s *SettingsService) ToggleDarkMode(ctx context.Context, userID int64) (bool, error) {
	return s.repository.ToggleDarkMode(ctx, userID)
}

func (s *SettingsService) TogglePrayerAlerts(ctx context.Context, userID int64) (bool, error) {
	return s.repository.TogglePrayerAlerts(ctx, userID)
}

func cleanName(name string) (string, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/triply-app/triply/internal/domain"
	"github.com/triply-app/triply/internal/repository"
)

type settingsService struct {
	prefs repository.TravelPrefsRepo
}

func NewSettingsService(prefs repository.TravelPrefsRepo) SettingsService {
	return &settingsService{prefs: prefs}
}

// Effective resolves the preference row used for a trip's travel
// computations: the trip's own override when one exists, otherwise the
// global row, otherwise the built-in defaults.
func (s *settingsService) Effective(ctx context.Context, tripID string) (domain.TravelPrefs, error) {
	if tripID != "" {
		p, err := s.prefs.GetForTrip(ctx, tripID)
		if err != nil {
			return domain.TravelPrefs{}, fmt.Errorf("loading trip travel settings: %w", err)
		}
		if p != nil {
			return *p, nil
		}
	}
	return s.Global(ctx)
}

func (s *settingsService) Global(ctx context.Context) (domain.TravelPrefs, error) {
	p, err := s.prefs.GetGlobal(ctx)
	if err != nil {
		return domain.TravelPrefs{}, fmt.Errorf("loading global travel settings: %w", err)
	}
	if p == nil {
		return domain.DefaultTravelPrefs(), nil
	}
	return *p, nil
}

func (s *settingsService) SetGlobal(ctx context.Context, p domain.TravelPrefs) error {
	if err := validatePrefs(p); err != nil {
		return err
	}
	return s.prefs.SetGlobal(ctx, p)
}

func (s *settingsService) SetForTrip(ctx context.Context, tripID string, p domain.TravelPrefs) error {
	if tripID == "" {
		return fmt.Errorf("trip id is required")
	}
	if err := validatePrefs(p); err != nil {
		return err
	}
	return s.prefs.SetForTrip(ctx, tripID, p)
}

func (s *settingsService) ClearForTrip(ctx context.Context, tripID string) error {
	return s.prefs.ClearForTrip(ctx, tripID)
}

func validatePrefs(p domain.TravelPrefs) error {
	if !domain.ValidTravelModes[string(p.Mode)] {
		return fmt.Errorf("invalid travel mode %q (walk, drive, transit, auto)", p.Mode)
	}
	if p.Settings.WalkingSpeedKmh <= 0 {
		return fmt.Errorf("walking speed must be positive, got %.2f", p.Settings.WalkingSpeedKmh)
	}
	if p.Settings.DefaultBufferMin < 0 {
		return fmt.Errorf("buffer minutes must not be negative, got %.2f", p.Settings.DefaultBufferMin)
	}
	return nil
}

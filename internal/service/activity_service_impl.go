package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/triply-app/triply/internal/domain"
	"github.com/triply-app/triply/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
	trips      repository.TripRepo
}

func NewActivityService(activities repository.ActivityRepo, trips repository.TripRepo) ActivityService {
	return &activityService{activities: activities, trips: trips}
}

func (s *activityService) Create(ctx context.Context, a *domain.Activity) error {
	if a.Name == "" {
		return fmt.Errorf("activity name is required")
	}
	if a.Day < 1 {
		return fmt.Errorf("activity day must be 1 or greater, got %d", a.Day)
	}
	if err := a.ValidateTime(); err != nil {
		return err
	}
	if _, err := s.trips.GetByID(ctx, a.TripID); err != nil {
		return fmt.Errorf("resolving trip for activity: %w", err)
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.activities.Create(ctx, a)
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *activityService) ListByTrip(ctx context.Context, tripID string) ([]*domain.Activity, error) {
	return s.activities.ListByTrip(ctx, tripID)
}

func (s *activityService) ListForDay(ctx context.Context, tripID string, day int) ([]*domain.Activity, error) {
	acts, err := s.activities.ListByTripDay(ctx, tripID, day)
	if err != nil {
		return nil, err
	}
	domain.SortByTime(acts)
	return acts, nil
}

func (s *activityService) Update(ctx context.Context, a *domain.Activity) error {
	if a.Day < 1 {
		return fmt.Errorf("activity day must be 1 or greater, got %d", a.Day)
	}
	if err := a.ValidateTime(); err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	return s.activities.Update(ctx, a)
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/triply-app/triply/internal/domain"
	"github.com/triply-app/triply/internal/repository"
)

type tripService struct {
	trips repository.TripRepo
}

func NewTripService(trips repository.TripRepo) TripService {
	return &tripService{trips: trips}
}

func (s *tripService) Create(ctx context.Context, t *domain.Trip) error {
	if t.Name == "" {
		return fmt.Errorf("trip name is required")
	}
	if t.EndDate != nil && t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("trip end date %s is before start date %s",
			t.EndDate.Format("2006-01-02"), t.StartDate.Format("2006-01-02"))
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = domain.TripPlanning
	}
	return s.trips.Create(ctx, t)
}

func (s *tripService) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	return s.trips.GetByID(ctx, id)
}

func (s *tripService) List(ctx context.Context, includeArchived bool) ([]*domain.Trip, error) {
	return s.trips.List(ctx, includeArchived)
}

func (s *tripService) Update(ctx context.Context, t *domain.Trip) error {
	t.UpdatedAt = time.Now().UTC()
	return s.trips.Update(ctx, t)
}

func (s *tripService) Archive(ctx context.Context, id string) error {
	return s.trips.Archive(ctx, id)
}

func (s *tripService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		t, err := s.trips.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t.Status != domain.TripArchived {
			return fmt.Errorf("trip must be archived before deletion (use --force to override)")
		}
	}
	return s.trips.Delete(ctx, id)
}

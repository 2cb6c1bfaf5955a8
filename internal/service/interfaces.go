package service

import (
	"context"
	"time"

	"github.com/triply-app/triply/internal/contract"
	"github.com/triply-app/triply/internal/domain"
)

type TripService interface {
	Create(ctx context.Context, t *domain.Trip) error
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Trip, error)
	Update(ctx context.Context, t *domain.Trip) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type ActivityService interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	ListByTrip(ctx context.Context, tripID string) ([]*domain.Activity, error)
	ListForDay(ctx context.Context, tripID string, day int) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error
}

type SettingsService interface {
	Effective(ctx context.Context, tripID string) (domain.TravelPrefs, error)
	Global(ctx context.Context) (domain.TravelPrefs, error)
	SetGlobal(ctx context.Context, p domain.TravelPrefs) error
	SetForTrip(ctx context.Context, tripID string, p domain.TravelPrefs) error
	ClearForTrip(ctx context.Context, tripID string) error
}

type AdviseService interface {
	Advise(ctx context.Context, req contract.AdviseRequest) (*contract.AdviseResponse, error)
	RecomputeSchedules(ctx context.Context, tripID string, now time.Time) (int, error)
}

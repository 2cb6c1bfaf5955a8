package repository

import (
	"context"

	"github.com/triply-app/triply/internal/domain"
)

type TripRepo interface {
	Create(ctx context.Context, t *domain.Trip) error
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Trip, error)
	Update(ctx context.Context, t *domain.Trip) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	ListByTrip(ctx context.Context, tripID string) ([]*domain.Activity, error)
	ListByTripDay(ctx context.Context, tripID string, day int) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error
}

// TravelPrefsRepo stores travel preference rows keyed by scope: the single
// global row, plus optional per-trip overrides.
type TravelPrefsRepo interface {
	GetGlobal(ctx context.Context) (*domain.TravelPrefs, error)
	GetForTrip(ctx context.Context, tripID string) (*domain.TravelPrefs, error)
	SetGlobal(ctx context.Context, p domain.TravelPrefs) error
	SetForTrip(ctx context.Context, tripID string, p domain.TravelPrefs) error
	ClearForTrip(ctx context.Context, tripID string) error
}

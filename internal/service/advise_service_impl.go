package service

import (
	"context"
	"fmt"
	"time"

	"github.com/triply-app/triply/internal/advisor"
	"github.com/triply-app/triply/internal/contract"
	"github.com/triply-app/triply/internal/domain"
	"github.com/triply-app/triply/internal/repository"
)

type adviseService struct {
	trips      repository.TripRepo
	activities repository.ActivityRepo
	settings   SettingsService
	sink       advisor.NotificationSink
}

func NewAdviseService(
	trips repository.TripRepo,
	activities repository.ActivityRepo,
	settings SettingsService,
	sink advisor.NotificationSink,
) AdviseService {
	return &adviseService{
		trips:      trips,
		activities: activities,
		settings:   settings,
		sink:       sink,
	}
}

func (s *adviseService) Advise(ctx context.Context, req contract.AdviseRequest) (*contract.AdviseResponse, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	if _, err := s.trips.GetByID(ctx, req.TripID); err != nil {
		return nil, &contract.AdviseError{
			Code:    contract.ErrTripNotFound,
			Message: err.Error(),
		}
	}

	prefs, err := s.settings.Effective(ctx, req.TripID)
	if err != nil {
		return nil, &contract.AdviseError{
			Code:    contract.ErrInternalError,
			Message: err.Error(),
		}
	}
	mode := prefs.Mode
	if req.ModeOverride != "" {
		if !domain.ValidTravelModes[string(req.ModeOverride)] {
			return nil, &contract.AdviseError{
				Code:    contract.ErrInvalidMode,
				Message: fmt.Sprintf("unknown travel mode %q", req.ModeOverride),
			}
		}
		mode = req.ModeOverride
	}

	activities, err := s.loadActivities(ctx, req.TripID, req.Day)
	if err != nil {
		return nil, &contract.AdviseError{
			Code:    contract.ErrInternalError,
			Message: err.Error(),
		}
	}

	decision := advisor.Evaluate(activities, mode, prefs.Settings, now)
	pairs := advisor.EvaluatePairs(activities, mode, prefs.Settings, now)

	resp := &contract.AdviseResponse{
		GeneratedAt: now,
		TripID:      req.TripID,
		Day:         domain.MinDay(activities),
		Mode:        mode,
		Pairs:       make([]contract.LeaveByView, 0, len(pairs)),
		Nudge:       decision.Nudge,
		Skipped:     decision.PairsSkipped,
	}
	for _, p := range pairs {
		resp.Pairs = append(resp.Pairs, contract.LeaveByView{
			FromName:       p.From.Name,
			FromTime:       p.From.Time,
			ToName:         p.To.Name,
			ToTime:         p.To.Time,
			Mode:           p.Result.Mode,
			DistanceKm:     p.Result.DistanceKm,
			DurationMin:    p.Result.DurationMin,
			BufferMin:      p.Result.BufferMin,
			TotalMin:       p.Result.TotalMin,
			LeaveByAt:      p.Result.LeaveByAt,
			Status:         p.Result.Status,
			MinutesToLeave: p.MinutesToLeave,
		})
	}
	return resp, nil
}

// RecomputeSchedules replaces the full alert schedule for a trip: every
// previously scheduled alert is cancelled, then one batch is planned and
// issued for the current day plan. Returns the number of alerts the sink
// accepted.
func (s *adviseService) RecomputeSchedules(ctx context.Context, tripID string, now time.Time) (int, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return 0, err
	}
	prefs, err := s.settings.Effective(ctx, tripID)
	if err != nil {
		return 0, err
	}
	activities, err := s.activities.ListByTrip(ctx, tripID)
	if err != nil {
		return 0, err
	}
	alerts := advisor.PlanBatch(activities, prefs.Mode, prefs.Settings, now)
	return advisor.ApplyBatch(s.sink, alerts), nil
}

func (s *adviseService) loadActivities(ctx context.Context, tripID string, day int) ([]*domain.Activity, error) {
	if day > 0 {
		return s.activities.ListByTripDay(ctx, tripID, day)
	}
	return s.activities.ListByTrip(ctx, tripID)
}

// Package seasons orchestrates the season rollover: generate the schedule,
// gate it behind the validator, persist it, and re-validate what was stored.
package seasons

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"league-office-service/internal/domain"
	"league-office-service/internal/logging"
	"league-office-service/internal/metrics"
	"league-office-service/internal/rng"
	"league-office-service/internal/schedule"
	"league-office-service/internal/store"
)

// Service coordinates schedule generation and persistence.
type Service struct {
	store   store.GameStore
	logger  *slog.Logger
	metrics *metrics.Recorder
	rand    rng.Source
}

// NewService constructs a Service with the provided dependencies.
func NewService(gameStore store.GameStore, logger *slog.Logger, recorder *metrics.Recorder, r rng.Source) *Service {
	return &Service{
		store:   gameStore,
		logger:  logger,
		metrics: recorder,
		rand:    r,
	}
}

// GenerateSeason builds a full season slate, asserts its invariants,
// persists it, and re-validates the persisted rows. Any failure aborts
// before dependent systems can observe a broken season.
func (s *Service) GenerateSeason(ctx context.Context, seasonID string, year int, teams []domain.Team) ([]domain.ScheduledGame, error) {
	start := time.Now()
	games, err := schedule.Generate(teams, seasonID, year, s.rand)
	s.metrics.RecordScheduleRun(time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if err := schedule.AssertValid(games, teams); err != nil {
		s.metrics.RecordValidationFailure()
		return nil, err
	}

	err = s.store.ReplaceSeason(ctx, seasonID, games)
	s.metrics.RecordStoreWrite(err)
	if err != nil {
		return nil, fmt.Errorf("persisting season %s: %w", seasonID, err)
	}
	if err := s.store.SetTeams(ctx, teams); err != nil {
		return nil, fmt.Errorf("persisting league teams: %w", err)
	}

	stored, err := schedule.ValidateStored(ctx, s.store, seasonID, teams)
	if err != nil {
		return nil, err
	}
	if !stored.Valid {
		s.metrics.RecordValidationFailure()
		return nil, fmt.Errorf("stored schedule for season %s failed validation: %v", seasonID, stored.Issues)
	}

	logging.Info(s.logger, "season generated",
		logging.FieldSeason, seasonID,
		logging.FieldCount, len(games),
	)
	return games, nil
}

// Schedule returns the persisted schedule for a season.
func (s *Service) Schedule(ctx context.Context, seasonID string) ([]domain.ScheduledGame, error) {
	return s.store.ListSeasonGames(ctx, seasonID)
}

// TeamSchedule returns a single team's persisted schedule.
func (s *Service) TeamSchedule(ctx context.Context, seasonID, teamID string) ([]domain.ScheduledGame, error) {
	return s.store.ListTeamGames(ctx, seasonID, teamID)
}

// ValidateSeason re-derives schedule counts from persisted rows. When the
// caller supplies no teams, the snapshot stored at generation time is used.
func (s *Service) ValidateSeason(ctx context.Context, seasonID string, teams []domain.Team) (schedule.Result, error) {
	if len(teams) == 0 {
		stored, err := s.store.ListTeams(ctx)
		if err != nil {
			return schedule.Result{}, fmt.Errorf("loading league teams: %w", err)
		}
		teams = stored
	}

	result, err := schedule.ValidateStored(ctx, s.store, seasonID, teams)
	if err != nil {
		return schedule.Result{}, err
	}
	if !result.Valid {
		s.metrics.RecordValidationFailure()
	}
	return result, nil
}

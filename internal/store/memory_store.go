// Package store persists generated schedules: in memory by default, in
// Postgres when a database is configured.
package store

import (
	"context"
	"sync"

	"league-office-service/internal/domain"
)

// GameStore is the contract for persisting and retrieving season schedules
// along with the league's team snapshot.
type GameStore interface {
	ReplaceSeason(ctx context.Context, seasonID string, games []domain.ScheduledGame) error
	ListSeasonGames(ctx context.Context, seasonID string) ([]domain.ScheduledGame, error)
	ListTeamGames(ctx context.Context, seasonID, teamID string) ([]domain.ScheduledGame, error)
	SetTeams(ctx context.Context, teams []domain.Team) error
	ListTeams(ctx context.Context) ([]domain.Team, error)
}

// MemoryStore keeps a thread-safe snapshot of schedules and teams in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	seasons map[string][]domain.ScheduledGame
	teams   []domain.Team
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seasons: make(map[string][]domain.ScheduledGame),
	}
}

// ReplaceSeason swaps the stored schedule for a season with a new snapshot.
func (s *MemoryStore) ReplaceSeason(_ context.Context, seasonID string, games []domain.ScheduledGame) error {
	copied := make([]domain.ScheduledGame, len(games))
	copy(copied, games)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasons[seasonID] = copied
	return nil
}

// ListSeasonGames returns a copy of the season's schedule.
func (s *MemoryStore) ListSeasonGames(_ context.Context, seasonID string) ([]domain.ScheduledGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := s.seasons[seasonID]
	result := make([]domain.ScheduledGame, len(games))
	copy(result, games)
	return result, nil
}

// ListTeamGames returns the subset of a season's schedule involving teamID.
func (s *MemoryStore) ListTeamGames(_ context.Context, seasonID, teamID string) ([]domain.ScheduledGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.ScheduledGame
	for _, g := range s.seasons[seasonID] {
		if g.HomeTeamID == teamID || g.AwayTeamID == teamID {
			result = append(result, g)
		}
	}
	return result, nil
}

// SetTeams replaces the league's team snapshot.
func (s *MemoryStore) SetTeams(_ context.Context, teams []domain.Team) error {
	copied := make([]domain.Team, len(teams))
	copy(copied, teams)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = copied
	return nil
}

// ListTeams returns a copy of the current teams.
func (s *MemoryStore) ListTeams(_ context.Context) ([]domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Team, len(s.teams))
	copy(result, s.teams)
	return result, nil
}

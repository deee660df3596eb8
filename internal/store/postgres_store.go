package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"league-office-service/internal/domain"
)

// PostgresStore persists schedules in Postgres. Writes happen once per
// season rollover; reads back the same rows so the validator can re-derive
// counts from what was actually persisted.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a Postgres connection and verifies it early.
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Migrate creates the schedule and team tables if they do not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	const q = `
	CREATE TABLE IF NOT EXISTS scheduled_games (
		id           TEXT PRIMARY KEY,
		season_id    TEXT NOT NULL,
		home_team_id TEXT NOT NULL,
		away_team_id TEXT NOT NULL,
		game_date    DATE NOT NULL,
		game_day     INT  NOT NULL,
		is_preseason BOOLEAN NOT NULL DEFAULT FALSE
	);
	CREATE INDEX IF NOT EXISTS scheduled_games_season_idx ON scheduled_games (season_id);
	CREATE TABLE IF NOT EXISTS league_teams (
		id           TEXT PRIMARY KEY,
		abbreviation TEXT NOT NULL,
		conference   TEXT NOT NULL,
		division     TEXT NOT NULL
	);
	`
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("migrating: %w", err)
	}
	return nil
}

// ReplaceSeason deletes any prior schedule for the season and inserts the
// new one.
func (s *PostgresStore) ReplaceSeason(ctx context.Context, seasonID string, games []domain.ScheduledGame) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM scheduled_games WHERE season_id = $1`, seasonID); err != nil {
		return fmt.Errorf("clearing season %s: %w", seasonID, err)
	}

	const q = `
	INSERT INTO scheduled_games (id, season_id, home_team_id, away_team_id, game_date, game_day, is_preseason)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, g := range games {
		if _, err := s.db.ExecContext(ctx, q,
			g.ID, g.SeasonID, g.HomeTeamID, g.AwayTeamID, g.GameDate, g.GameDay, g.IsPreseason,
		); err != nil {
			return fmt.Errorf("inserting game %s: %w", g.ID, err)
		}
	}
	return nil
}

// ListSeasonGames loads a season's schedule in calendar order.
func (s *PostgresStore) ListSeasonGames(ctx context.Context, seasonID string) ([]domain.ScheduledGame, error) {
	const q = `
	SELECT id, season_id, home_team_id, away_team_id, to_char(game_date, 'YYYY-MM-DD'), game_day, is_preseason
	FROM scheduled_games
	WHERE season_id = $1
	ORDER BY game_day, id
	`
	return s.queryGames(ctx, q, seasonID)
}

// ListTeamGames loads the subset of a season's schedule involving teamID.
func (s *PostgresStore) ListTeamGames(ctx context.Context, seasonID, teamID string) ([]domain.ScheduledGame, error) {
	const q = `
	SELECT id, season_id, home_team_id, away_team_id, to_char(game_date, 'YYYY-MM-DD'), game_day, is_preseason
	FROM scheduled_games
	WHERE season_id = $1 AND (home_team_id = $2 OR away_team_id = $2)
	ORDER BY game_day, id
	`
	return s.queryGames(ctx, q, seasonID, teamID)
}

func (s *PostgresStore) queryGames(ctx context.Context, query string, args ...any) ([]domain.ScheduledGame, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	var games []domain.ScheduledGame
	for rows.Next() {
		var g domain.ScheduledGame
		if err := rows.Scan(&g.ID, &g.SeasonID, &g.HomeTeamID, &g.AwayTeamID, &g.GameDate, &g.GameDay, &g.IsPreseason); err != nil {
			return nil, fmt.Errorf("scanning game row: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating game rows: %w", err)
	}
	return games, nil
}

// SetTeams replaces the persisted league team snapshot.
func (s *PostgresStore) SetTeams(ctx context.Context, teams []domain.Team) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM league_teams`); err != nil {
		return fmt.Errorf("clearing teams: %w", err)
	}

	const q = `
	INSERT INTO league_teams (id, abbreviation, conference, division)
	VALUES ($1, $2, $3, $4)
	`
	for _, t := range teams {
		if _, err := s.db.ExecContext(ctx, q, t.ID, t.Abbreviation, t.Conference, t.Division); err != nil {
			return fmt.Errorf("inserting team %s: %w", t.ID, err)
		}
	}
	return nil
}

// ListTeams loads the persisted league teams.
func (s *PostgresStore) ListTeams(ctx context.Context) ([]domain.Team, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, abbreviation, conference, division FROM league_teams ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Abbreviation, &t.Conference, &t.Division); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team rows: %w", err)
	}
	return teams, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

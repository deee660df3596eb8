package schedule

import (
	"context"
	"fmt"
	"strings"

	"league-office-service/internal/domain"
)

// Result is the outcome of a schedule validation pass. Issues are
// human-readable and name the offending team where one exists.
type Result struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

type teamCounts struct {
	home      int
	away      int
	preseason int
}

// Validate re-derives per-team and aggregate counts from a schedule and
// reports every violation. It deliberately shares nothing with the
// generator's construction beyond the count constants, so it can catch
// generator bugs rather than restate them.
func Validate(games []domain.ScheduledGame, teams []domain.Team) Result {
	counts := make(map[string]*teamCounts, len(teams))
	for _, t := range teams {
		counts[t.ID] = &teamCounts{}
	}

	var issues []string
	regular, pre := 0, 0
	for _, g := range games {
		home, homeOK := counts[g.HomeTeamID]
		away, awayOK := counts[g.AwayTeamID]
		if !homeOK || !awayOK {
			issues = append(issues, fmt.Sprintf("game %s references unknown team", g.ID))
			continue
		}
		if g.IsPreseason {
			pre++
			home.preseason++
			away.preseason++
			continue
		}
		regular++
		home.home++
		away.away++
	}

	for _, t := range teams {
		c := counts[t.ID]
		total := c.home + c.away
		if total != RegularSeasonPerTeam {
			issues = append(issues, fmt.Sprintf("team %s has %d regular-season games, want %d", t.ID, total, RegularSeasonPerTeam))
		}
		if c.home != HomeGamesPerTeam {
			issues = append(issues, fmt.Sprintf("team %s has %d home games, want %d", t.ID, c.home, HomeGamesPerTeam))
		}
		if c.preseason != PreseasonPerTeam {
			issues = append(issues, fmt.Sprintf("team %s has %d preseason games, want %d", t.ID, c.preseason, PreseasonPerTeam))
		}
	}

	if regular != RegularSeasonGames {
		issues = append(issues, fmt.Sprintf("league has %d regular-season games, want %d", regular, RegularSeasonGames))
	}
	if pre != PreseasonGames {
		issues = append(issues, fmt.Sprintf("league has %d preseason games, want %d", pre, PreseasonGames))
	}

	return Result{Valid: len(issues) == 0, Issues: issues}
}

// AssertValid is the hard gate between schedule generation and anything that
// observes the season: it converts validation issues into an error so the
// enclosing operation aborts.
func AssertValid(games []domain.ScheduledGame, teams []domain.Team) error {
	res := Validate(games, teams)
	if res.Valid {
		return nil
	}
	return fmt.Errorf("invalid schedule: %s", strings.Join(res.Issues, "; "))
}

// GameSource yields the persisted schedule for a season.
type GameSource interface {
	ListSeasonGames(ctx context.Context, seasonID string) ([]domain.ScheduledGame, error)
}

// ValidateStored reloads a season's persisted rows and validates them, so a
// partial write between generation and storage is caught.
func ValidateStored(ctx context.Context, source GameSource, seasonID string, teams []domain.Team) (Result, error) {
	games, err := source.ListSeasonGames(ctx, seasonID)
	if err != nil {
		return Result{}, fmt.Errorf("loading stored schedule: %w", err)
	}
	return Validate(games, teams), nil
}

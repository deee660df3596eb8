// Package schedule builds and validates the league calendar: the 1230-game
// regular season and the 120-game preseason.
package schedule

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"league-office-service/internal/domain"
	"league-office-service/internal/rng"
)

const (
	// TeamsPerLeague is the only roster size the generator accepts.
	TeamsPerLeague = 30

	teamsPerDivision = 5

	// RegularSeasonGames is the aggregate regular-season game count.
	RegularSeasonGames = 1230
	// RegularSeasonPerTeam is each team's regular-season game count.
	RegularSeasonPerTeam = 82
	// HomeGamesPerTeam is each team's regular-season home game count.
	HomeGamesPerTeam = 41
	// PreseasonPerTeam is each team's preseason game count.
	PreseasonPerTeam = 8
	// PreseasonGames is the aggregate preseason game count.
	PreseasonGames = TeamsPerLeague * PreseasonPerTeam / 2

	// seasonWindowDays is the calendar window the regular season is packed
	// into. With 1230 games that works out to 7 games per day.
	seasonWindowDays = 180
)

// Generate produces the full season slate for exactly 30 teams: preseason
// games on negative game days followed by the regular season. The only
// randomness is the preseason pairing shuffle, drawn from r.
func Generate(teams []domain.Team, seasonID string, year int, r rng.Source) ([]domain.ScheduledGame, error) {
	if len(teams) != TeamsPerLeague {
		return nil, fmt.Errorf("schedule: got %d teams, want %d", len(teams), TeamsPerLeague)
	}

	ordered := make([]domain.Team, len(teams))
	copy(ordered, teams)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	idx, err := buildIndex(ordered)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	matchups := regularSeasonMatchups(ordered, idx)
	if len(matchups) != RegularSeasonGames {
		return nil, fmt.Errorf("schedule: produced %d regular-season matchups, want %d", len(matchups), RegularSeasonGames)
	}

	games := preseason(ordered, seasonID, year, r)
	games = append(games, placeOnCalendar(matchups, seasonID, year)...)
	return games, nil
}

// regularSeasonMatchups classifies every unordered pair once and expands the
// relationship into home/away matchups.
func regularSeasonMatchups(ordered []domain.Team, idx *leagueIndex) []domain.Matchup {
	matchups := make([]domain.Matchup, 0, RegularSeasonGames)
	appendGames := func(home, away string, count int) {
		for g := 0; g < count; g++ {
			matchups = append(matchups, domain.Matchup{HomeTeamID: home, AwayTeamID: away})
		}
	}

	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			a, b := ordered[i], ordered[j]
			rel := idx.classify(a, b)
			switch rel.Kind {
			case RelDivision, RelConferenceFour:
				appendGames(a.ID, b.ID, 2)
				appendGames(b.ID, a.ID, 2)
			case RelConferenceThree:
				other := b.ID
				if rel.HostTwiceID == b.ID {
					other = a.ID
				}
				appendGames(rel.HostTwiceID, other, 2)
				appendGames(other, rel.HostTwiceID, 1)
			case RelInterConference:
				appendGames(a.ID, b.ID, 1)
				appendGames(b.ID, a.ID, 1)
			}
		}
	}
	return matchups
}

// placeOnCalendar lays matchups end-to-end across the season window. This is
// plain bin-packing: no back-to-back avoidance and no travel model.
func placeOnCalendar(matchups []domain.Matchup, seasonID string, year int) []domain.ScheduledGame {
	perDay := (len(matchups) + seasonWindowDays - 1) / seasonWindowDays
	if perDay < 1 {
		perDay = 1
	}

	start := SeasonStart(year)
	games := make([]domain.ScheduledGame, 0, len(matchups))
	for i, m := range matchups {
		day := i / perDay
		games = append(games, domain.ScheduledGame{
			ID:         uuid.NewString(),
			SeasonID:   seasonID,
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
			GameDate:   start.AddDate(0, 0, day).Format(dateLayout),
			GameDay:    day,
		})
	}
	return games
}

// preseason runs eight rounds of random pairings. Every round pairs all 30
// teams off, so each team picks up exactly one game per round and finishes
// with eight. Game days count backwards from the regular-season opener.
func preseason(ordered []domain.Team, seasonID string, year int, r rng.Source) []domain.ScheduledGame {
	start := SeasonStart(year)
	games := make([]domain.ScheduledGame, 0, PreseasonGames)

	pool := make([]domain.Team, len(ordered))
	copy(pool, ordered)

	for round := 0; round < PreseasonPerTeam; round++ {
		r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		day := round - PreseasonPerTeam
		for i := 0; i+1 < len(pool); i += 2 {
			home, away := pool[i], pool[i+1]
			if round%2 == 1 {
				home, away = away, home
			}
			games = append(games, domain.ScheduledGame{
				ID:          uuid.NewString(),
				SeasonID:    seasonID,
				HomeTeamID:  home.ID,
				AwayTeamID:  away.ID,
				GameDate:    start.AddDate(0, 0, day).Format(dateLayout),
				GameDay:     day,
				IsPreseason: true,
			})
		}
	}
	return games
}

package schedule

import (
	"testing"

	"league-office-service/internal/domain"
	"league-office-service/internal/rng"
	"league-office-service/internal/testutil"
)

func generateLeague(t *testing.T, seed int64) ([]domain.ScheduledGame, []domain.Team) {
	t.Helper()
	teams := testutil.LeagueTeams()
	games, err := Generate(teams, "season-1", 2025, rng.New(seed))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return games, teams
}

func TestGenerateAggregateCounts(t *testing.T) {
	games, _ := generateLeague(t, 1)

	regular, pre := 0, 0
	for _, g := range games {
		if g.IsPreseason {
			pre++
		} else {
			regular++
		}
	}
	if regular != RegularSeasonGames {
		t.Errorf("regular-season games = %d, want %d", regular, RegularSeasonGames)
	}
	if pre != PreseasonGames {
		t.Errorf("preseason games = %d, want %d", pre, PreseasonGames)
	}
}

func TestGeneratePerTeamCounts(t *testing.T) {
	games, teams := generateLeague(t, 2)

	type counts struct{ home, away, pre int }
	byTeam := make(map[string]*counts, len(teams))
	for _, tm := range teams {
		byTeam[tm.ID] = &counts{}
	}
	for _, g := range games {
		if g.IsPreseason {
			byTeam[g.HomeTeamID].pre++
			byTeam[g.AwayTeamID].pre++
			continue
		}
		byTeam[g.HomeTeamID].home++
		byTeam[g.AwayTeamID].away++
	}

	for _, tm := range teams {
		c := byTeam[tm.ID]
		if c.home != HomeGamesPerTeam {
			t.Errorf("team %s home games = %d, want %d", tm.ID, c.home, HomeGamesPerTeam)
		}
		if c.home+c.away != RegularSeasonPerTeam {
			t.Errorf("team %s regular-season games = %d, want %d", tm.ID, c.home+c.away, RegularSeasonPerTeam)
		}
		if c.pre != PreseasonPerTeam {
			t.Errorf("team %s preseason games = %d, want %d", tm.ID, c.pre, PreseasonPerTeam)
		}
	}
}

func TestGeneratePairGameCounts(t *testing.T) {
	games, teams := generateLeague(t, 3)

	byID := make(map[string]domain.Team, len(teams))
	for _, tm := range teams {
		byID[tm.ID] = tm
	}

	type pair struct{ a, b string }
	key := func(x, y string) pair {
		if x < y {
			return pair{x, y}
		}
		return pair{y, x}
	}
	meetings := make(map[pair]int)
	for _, g := range games {
		if g.IsPreseason {
			continue
		}
		meetings[key(g.HomeTeamID, g.AwayTeamID)]++
	}

	threeGameOpponents := make(map[string]int)
	for p, n := range meetings {
		a, b := byID[p.a], byID[p.b]
		switch {
		case a.Conference != b.Conference:
			if n != 2 {
				t.Errorf("inter-conference pair %s/%s met %d times, want 2", p.a, p.b, n)
			}
		case a.Division == b.Division:
			if n != 4 {
				t.Errorf("division pair %s/%s met %d times, want 4", p.a, p.b, n)
			}
		default:
			if n != 3 && n != 4 {
				t.Errorf("conference pair %s/%s met %d times, want 3 or 4", p.a, p.b, n)
			}
			if n == 3 {
				threeGameOpponents[p.a]++
				threeGameOpponents[p.b]++
			}
		}
	}

	for _, tm := range teams {
		if got := threeGameOpponents[tm.ID]; got != 4 {
			t.Errorf("team %s has %d three-game opponents, want 4", tm.ID, got)
		}
	}
}

func TestGenerateThreeGameHostingBalance(t *testing.T) {
	games, teams := generateLeague(t, 4)

	byID := make(map[string]domain.Team, len(teams))
	for _, tm := range teams {
		byID[tm.ID] = tm
	}

	type pair struct{ a, b string }
	key := func(x, y string) pair {
		if x < y {
			return pair{x, y}
		}
		return pair{y, x}
	}
	homeByPair := make(map[pair]map[string]int)
	for _, g := range games {
		if g.IsPreseason {
			continue
		}
		a, b := byID[g.HomeTeamID], byID[g.AwayTeamID]
		if a.Conference != b.Conference || a.Division == b.Division {
			continue
		}
		k := key(g.HomeTeamID, g.AwayTeamID)
		if homeByPair[k] == nil {
			homeByPair[k] = make(map[string]int)
		}
		homeByPair[k][g.HomeTeamID]++
	}

	hostTwice := make(map[string]int)
	for p, homes := range homeByPair {
		total := homes[p.a] + homes[p.b]
		if total != 3 {
			continue
		}
		switch {
		case homes[p.a] == 2 && homes[p.b] == 1:
			hostTwice[p.a]++
		case homes[p.b] == 2 && homes[p.a] == 1:
			hostTwice[p.b]++
		default:
			t.Errorf("three-game pair %s/%s split %d/%d, want 2/1", p.a, p.b, homes[p.a], homes[p.b])
		}
	}

	for _, tm := range teams {
		if got := hostTwice[tm.ID]; got != 2 {
			t.Errorf("team %s hosts twice in %d three-game series, want 2", tm.ID, got)
		}
	}
}

func TestGeneratePreseasonDays(t *testing.T) {
	games, _ := generateLeague(t, 5)

	for _, g := range games {
		if g.IsPreseason {
			if g.GameDay < -PreseasonPerTeam || g.GameDay > -1 {
				t.Fatalf("preseason game day %d outside [-%d, -1]", g.GameDay, PreseasonPerTeam)
			}
		} else if g.GameDay < 0 || g.GameDay >= seasonWindowDays {
			t.Fatalf("regular-season game day %d outside [0, %d)", g.GameDay, seasonWindowDays)
		}
	}
}

func TestGenerateDeterministicMatchups(t *testing.T) {
	first, _ := generateLeague(t, 42)
	second, _ := generateLeague(t, 42)

	if len(first) != len(second) {
		t.Fatalf("game counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.HomeTeamID != b.HomeTeamID || a.AwayTeamID != b.AwayTeamID || a.GameDay != b.GameDay {
			t.Fatalf("game %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestGenerateRejectsWrongTeamCount(t *testing.T) {
	teams := testutil.LeagueTeams()[:29]
	if _, err := Generate(teams, "season-1", 2025, rng.New(1)); err == nil {
		t.Fatal("expected error for 29 teams")
	}
}

func TestBuildIndexRejectsUnevenDivisions(t *testing.T) {
	teams := testutil.LeagueTeams()
	teams[0].Division = domain.DivisionCentral
	if _, err := buildIndex(teams); err == nil {
		t.Fatal("expected error for lopsided division")
	}
}

func TestSeasonStart(t *testing.T) {
	start := SeasonStart(2025)
	if got := start.Format(dateLayout); got != "2025-10-20" {
		t.Fatalf("SeasonStart(2025) = %s, want 2025-10-20", got)
	}
}

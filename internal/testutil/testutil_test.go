package testutil

import (
	"testing"

	"league-office-service/internal/domain"
)

func TestLeagueTeamsShape(t *testing.T) {
	teams := LeagueTeams()
	if len(teams) != 30 {
		t.Fatalf("got %d teams, want 30", len(teams))
	}

	perDivision := make(map[domain.Division]int)
	seen := make(map[string]bool)
	for _, tm := range teams {
		if seen[tm.ID] {
			t.Errorf("duplicate team id %s", tm.ID)
		}
		seen[tm.ID] = true
		perDivision[tm.Division]++

		found := false
		for _, div := range domain.ConferenceDivisions[tm.Conference] {
			if div == tm.Division {
				found = true
			}
		}
		if !found {
			t.Errorf("team %s: division %s not in conference %s", tm.ID, tm.Division, tm.Conference)
		}
	}

	if len(perDivision) != 6 {
		t.Fatalf("got %d divisions, want 6", len(perDivision))
	}
	for div, n := range perDivision {
		if n != 5 {
			t.Errorf("division %s has %d teams, want 5", div, n)
		}
	}
}

func TestBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello")
	if buf.Len() == 0 {
		t.Error("buffer logger should capture output")
	}
	DiscardLogger().Info("goes nowhere")
}

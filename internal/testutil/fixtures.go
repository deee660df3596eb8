package testutil

import (
	"fmt"

	"league-office-service/internal/domain"
)

// LeagueTeams returns a full 30-team league with five teams in each of the
// six divisions. IDs are deterministic so tests can reference specific teams.
func LeagueTeams() []domain.Team {
	var teams []domain.Team
	for _, conf := range []domain.Conference{domain.ConferenceEastern, domain.ConferenceWestern} {
		for _, div := range domain.ConferenceDivisions[conf] {
			for i := 0; i < 5; i++ {
				id := fmt.Sprintf("%s-%d", div, i+1)
				teams = append(teams, domain.Team{
					ID:           id,
					Abbreviation: fmt.Sprintf("%.3s%d", div, i+1),
					Conference:   conf,
					Division:     div,
				})
			}
		}
	}
	return teams
}

// SampleFreeAgent returns a market-ready free agent fixture.
func SampleFreeAgent() domain.FreeAgent {
	return domain.FreeAgent{
		PlayerID:      "player-1",
		Name:          "Test Player",
		Position:      domain.PositionSF,
		Age:           27,
		Overall:       82,
		Potential:     84,
		YearsInLeague: 6,
		Preferences:   domain.Preferences{Money: 60, Winning: 50, Role: 40, Market: 30},
		Status:        domain.FAAvailable,
	}
}

// ContendingTeam returns a team context that classifies as contending.
func ContendingTeam(id string) domain.TeamContext {
	return domain.TeamContext{
		TeamID:           id,
		Wins:             55,
		Losses:           27,
		Payroll:          150_000_000,
		CapSpace:         0,
		RosterSize:       14,
		StarCount:        2,
		YoungTalentCount: 1,
		AverageAge:       29.5,
		InWindow:         true,
		BestOverall:      92,
		EighthManOverall: 76,
		MarketSize:       domain.MarketLarge,
	}
}

// RebuildingTeam returns a team context that classifies as rebuilding.
func RebuildingTeam(id string) domain.TeamContext {
	return domain.TeamContext{
		TeamID:           id,
		Wins:             20,
		Losses:           62,
		Payroll:          110_000_000,
		CapSpace:         30_000_000,
		RosterSize:       13,
		StarCount:        0,
		YoungTalentCount: 5,
		AverageAge:       24.2,
		InWindow:         false,
		BestOverall:      81,
		EighthManOverall: 70,
		MarketSize:       domain.MarketSmall,
	}
}

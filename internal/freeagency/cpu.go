package freeagency

import (
	"sort"

	"github.com/google/uuid"

	"league-office-service/internal/contracts"
	"league-office-service/internal/domain"
	"league-office-service/internal/rng"
)

// DefaultCPUOfferCount is how many competing offers a market round produces.
const DefaultCPUOfferCount = 3

// GenerateCPUOffers builds realistic competing offers from the most
// interested teams: clubs that need the agent's position, have open roster
// spots, and have losses to make up bid first and bid highest.
func GenerateCPUOffers(fa domain.FreeAgent, teams []domain.TeamContext, count int, r rng.Source) []domain.ContractOffer {
	if count <= 0 {
		count = DefaultCPUOfferCount
	}

	type interested struct {
		team  domain.TeamContext
		score int
	}
	ranked := make([]interested, 0, len(teams))
	for _, t := range teams {
		if t.RosterSize >= MaxRosterSize {
			continue
		}
		ranked = append(ranked, interested{team: t, score: interestScore(fa, t)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].team.TeamID < ranked[j].team.TeamID
	})
	if len(ranked) > count {
		ranked = ranked[:count]
	}

	market := contracts.MarketValue(fa.Overall, fa.Age, fa.YearsInLeague, fa.Potential)
	offers := make([]domain.ContractOffer, 0, len(ranked))
	for _, candidate := range ranked {
		multiplier := 0.95
		if candidate.team.NeedsPosition(fa.Position) {
			multiplier = 1.1
		}
		offers = append(offers, domain.ContractOffer{
			ID:            uuid.NewString(),
			TeamID:        candidate.team.TeamID,
			PlayerID:      fa.PlayerID,
			Years:         offerYears(fa.Age, r),
			SalaryPerYear: roundToHundredK(int64(float64(market) * multiplier)),
		})
	}
	return offers
}

// interestScore ranks a team's appetite for the agent: a positional need
// dominates, then open roster spots, then how far the team is from winning.
func interestScore(fa domain.FreeAgent, team domain.TeamContext) int {
	score := 0
	if team.NeedsPosition(fa.Position) {
		score += 30
	}
	score += (MaxRosterSize - team.RosterSize) * 3
	score += (82 - team.Wins) / 4
	return score
}

// offerYears draws contract length from an age-bucketed range: long looks
// for the young, short ones past 32.
func offerYears(age int, r rng.Source) int {
	switch {
	case age <= 27:
		return rng.Between(r, 2, 4)
	case age <= 32:
		return rng.Between(r, 2, 3)
	default:
		return rng.Between(r, 1, 2)
	}
}

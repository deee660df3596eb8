package freeagency

import (
	"league-office-service/internal/domain"
)

// OfferScore breaks an offer's appeal down along the agent's four axes.
// Sub-scores are 0-100; Total is the preference-weighted sum.
type OfferScore struct {
	OfferID string  `json:"offerId"`
	TeamID  string  `json:"teamId"`
	Money   float64 `json:"money"`
	Winning float64 `json:"winning"`
	Role    float64 `json:"role"`
	Market  float64 `json:"market"`
	Total   float64 `json:"total"`
}

// ScoreOffer rates one offer against a free agent's preferences and the
// offering team's situation.
func ScoreOffer(fa domain.FreeAgent, offer domain.ContractOffer, team domain.TeamContext) OfferScore {
	wMoney, wWinning, wRole, wMarket := normalizeWeights(fa.Preferences)

	score := OfferScore{
		OfferID: offer.ID,
		TeamID:  offer.TeamID,
		Money:   moneyScore(fa, offer),
		Winning: winningScore(team),
		Role:    roleScore(fa, team),
		Market:  marketScore(team.MarketSize),
	}
	score.Total = wMoney*score.Money + wWinning*score.Winning + wRole*score.Role + wMarket*score.Market
	return score
}

// normalizeWeights turns the preference vector into weights summing to one.
// A zero vector degrades to equal weights.
func normalizeWeights(p domain.Preferences) (money, winning, role, market float64) {
	sum := float64(p.Money + p.Winning + p.Role + p.Market)
	if sum <= 0 {
		return 0.25, 0.25, 0.25, 0.25
	}
	return float64(p.Money) / sum, float64(p.Winning) / sum, float64(p.Role) / sum, float64(p.Market) / sum
}

// moneyScore ramps with the offer's fraction of the asking salary: half the
// ask is worth 50 points, 90% is worth 80, meeting the ask is worth 100.
// Each contract year adds 3 points of security.
func moneyScore(fa domain.FreeAgent, offer domain.ContractOffer) float64 {
	var base float64
	if fa.AskingSalary > 0 {
		ratio := float64(offer.SalaryPerYear) / float64(fa.AskingSalary)
		switch {
		case ratio >= 1.0:
			base = 100
		case ratio >= 0.9:
			base = 80 + (ratio-0.9)/0.1*20
		case ratio >= 0.5:
			base = 50 + (ratio-0.5)/0.4*30
		default:
			base = ratio / 0.5 * 50
		}
	}
	base += 3 * float64(offer.Years)
	if base > 100 {
		base = 100
	}
	return base
}

// winningScore scales team win percentage to 100 and credits each rostered
// star five points, capped at 100.
func winningScore(team domain.TeamContext) float64 {
	score := team.WinPct()*100 + 5*float64(team.StarCount)
	if score > 100 {
		score = 100
	}
	return score
}

// roleScore tiers by the role the agent would walk into: franchise player,
// co-star, starter at a position of need, rotation piece, or depth.
func roleScore(fa domain.FreeAgent, team domain.TeamContext) float64 {
	switch {
	case fa.Overall > team.BestOverall:
		return 100
	case fa.Overall >= team.BestOverall-3:
		return 80
	case team.NeedsPosition(fa.Position):
		return 70
	case fa.Overall > team.EighthManOverall:
		return 60
	default:
		return 40
	}
}

func marketScore(size domain.MarketSize) float64 {
	switch size {
	case domain.MarketLarge:
		return 100
	case domain.MarketMedium:
		return 65
	default:
		return 35
	}
}

// Package freeagency models the open market: agent preference vectors,
// asking prices, competing offers, and the acceptance decision.
package freeagency

import (
	"league-office-service/internal/contracts"
	"league-office-service/internal/domain"
	"league-office-service/internal/rng"
)

const preferenceNoise = 10

// GeneratePreferences derives the 4-axis preference vector from a player's
// hidden traits plus uniform noise. Axes are independent importance weights,
// clamped to [0,100]; normalization happens at scoring time.
func GeneratePreferences(traits domain.Traits, age, overall int, r rng.Source) domain.Preferences {
	money := traits.Greed + rng.Jitter(r, preferenceNoise)
	// Older players chase rings, young ones chase the bag.
	winning := 40 + (age-25)*4 + rng.Jitter(r, preferenceNoise)
	role := traits.Ego + rng.Jitter(r, preferenceNoise)
	market := 50 + (traits.Ego-traits.Loyalty)/2 + rng.Jitter(r, preferenceNoise)

	return domain.Preferences{
		Money:   clamp(money, 0, 100),
		Winning: clamp(winning, 0, 100),
		Role:    clamp(role, 0, 100),
		Market:  clamp(market, 0, 100),
	}
}

// AskingSalary is the agent's opening number: market value scaled by a
// greed-driven multiplier between 0.9x and 1.2x, rounded to $100K.
func AskingSalary(overall, age, yearsInLeague, potential int, traits domain.Traits) int64 {
	market := contracts.MarketValue(overall, age, yearsInLeague, potential)
	greed := clamp(traits.Greed, 0, 100)
	multiplier := 0.9 + 0.3*float64(greed)/100
	return roundToHundredK(int64(float64(market) * multiplier))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundToHundredK(v int64) int64 {
	return (v + 50_000) / 100_000 * 100_000
}

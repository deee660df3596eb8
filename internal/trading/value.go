package trading

import (
	"math"

	"league-office-service/internal/contracts"
	"league-office-service/internal/domain"
)

const (
	firstRoundBaseValue  = 40.0
	secondRoundBaseValue = 15.0

	// winsPerPickSlot converts a team's win total into an estimated draft
	// position. 82 wins / 30 slots, so roughly 2.73 wins per slot.
	winsPerPickSlot = 2.73

	futurePickDiscount = 0.9
)

// PlayerValue scores a player as a trade asset from one strategy's
// perspective: base ability, an age curve, a contract-friendliness term, and
// the profile's archetype modifier.
func PlayerValue(overall, potential, age int, salary int64, profile Profile) float64 {
	value := float64(overall) * 1.5

	switch {
	case age < 25:
		upside := potential - overall
		if upside > 0 {
			value += float64(upside) * 0.8
		}
	case age <= 30:
		value += 10
	default:
		value -= float64(age-30) * 3
	}

	// Team-friendly deals add value; overpays subtract it.
	value += float64(expectedSalary(overall)-salary) / 1e6 * 2

	return value * archetypeModifier(overall, potential, age, profile)
}

// expectedSalary is what a player of this ability would earn on a fresh
// prime-age deal, used as the reference point for contract value.
func expectedSalary(overall int) int64 {
	return contracts.MarketValue(overall, 27, 5, overall)
}

func archetypeModifier(overall, potential, age int, profile Profile) float64 {
	switch {
	case age >= 28 && overall >= 75:
		return profile.VeteranModifier
	case age <= 24 && potential >= 80:
		return profile.ProspectModifier
	default:
		return profile.PlayerModifier
	}
}

// PickValue estimates draft-pick worth: a round base, a lottery bonus tiered
// by the projected slot of the pick's original team, a 10%-per-year discount
// on future picks, and the profile's pick modifier.
func PickValue(year, round, originalTeamWins, currentYear int, profile Profile) float64 {
	value := secondRoundBaseValue
	if round == 1 {
		value = firstRoundBaseValue
		slot := float64(originalTeamWins) / winsPerPickSlot
		switch {
		case slot < 5:
			value += 25
		case slot < 10:
			value += 15
		case slot < 14:
			value += 8
		}
	}

	if yearsOut := year - currentYear; yearsOut > 0 {
		value *= math.Pow(futurePickDiscount, float64(yearsOut))
	}

	return value * profile.PickModifier
}

// CashValue rates cash at one point per million dollars.
func CashValue(amount int64) float64 {
	return float64(amount) / 1e6
}

// AssetValue dispatches on the asset tag.
func AssetValue(asset domain.TradeAsset, currentYear int, profile Profile) float64 {
	switch asset.Type {
	case domain.AssetPlayer:
		return PlayerValue(asset.Overall, asset.Potential, asset.Age, asset.Salary, profile)
	case domain.AssetDraftPick:
		return PickValue(asset.PickYear, asset.PickRound, asset.OriginalTeamWins, currentYear, profile)
	case domain.AssetCash:
		return CashValue(asset.CashAmount)
	default:
		return 0
	}
}

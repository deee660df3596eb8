// Package trading values trade assets, validates multi-team proposals
// against cap and roster rules, and scores proposals from each side's
// perspective through a single strategy-parameterized evaluator.
package trading

import "league-office-service/internal/domain"

// Strategy classifies a front office's posture for the season.
type Strategy string

const (
	StrategyContending Strategy = "contending"
	StrategyRebuilding Strategy = "rebuilding"
	StrategyRetooling  Strategy = "retooling"
	StrategyCompeting  Strategy = "competing"
)

// DetermineStrategy maps a team's competitive snapshot onto a strategy using
// fixed thresholds. Mid-band teams split on whether their young talent
// outnumbers their stars.
func DetermineStrategy(ctx domain.TeamContext) Strategy {
	winPct := ctx.WinPct()
	switch {
	case winPct >= 0.6 && ctx.StarCount >= 2 && ctx.InWindow:
		return StrategyContending
	case winPct < 0.35 && ctx.AverageAge < 26 && ctx.YoungTalentCount >= 3:
		return StrategyRebuilding
	case ctx.YoungTalentCount > ctx.StarCount:
		return StrategyRetooling
	default:
		return StrategyCompeting
	}
}

// Profile carries the strategy-specific weights the evaluator applies.
// Veteran and prospect modifiers shade player value by archetype; the pick
// modifier shades draft capital; AcceptThreshold is the net score an
// incoming proposal must clear before the CPU signs off.
type Profile struct {
	Strategy         Strategy
	VeteranModifier  float64
	ProspectModifier float64
	PlayerModifier   float64
	PickModifier     float64
	AcceptThreshold  float64
}

var profiles = map[Strategy]Profile{
	StrategyContending: {
		Strategy:         StrategyContending,
		VeteranModifier:  1.3,
		ProspectModifier: 0.8,
		PlayerModifier:   1.0,
		PickModifier:     0.6,
		AcceptThreshold:  10,
	},
	StrategyCompeting: {
		Strategy:         StrategyCompeting,
		VeteranModifier:  1.1,
		ProspectModifier: 1.0,
		PlayerModifier:   1.0,
		PickModifier:     1.0,
		AcceptThreshold:  8,
	},
	StrategyRetooling: {
		Strategy:         StrategyRetooling,
		VeteranModifier:  0.9,
		ProspectModifier: 1.15,
		PlayerModifier:   1.0,
		PickModifier:     1.2,
		AcceptThreshold:  8,
	},
	StrategyRebuilding: {
		Strategy:         StrategyRebuilding,
		VeteranModifier:  0.7,
		ProspectModifier: 1.3,
		PlayerModifier:   0.9,
		PickModifier:     1.5,
		AcceptThreshold:  5,
	},
}

// ProfileFor returns the evaluation profile for a strategy.
func ProfileFor(s Strategy) Profile {
	if p, ok := profiles[s]; ok {
		return p
	}
	return profiles[StrategyCompeting]
}

// ProfileForTeam classifies the team and returns its profile in one step.
func ProfileForTeam(ctx domain.TeamContext) Profile {
	return ProfileFor(DetermineStrategy(ctx))
}

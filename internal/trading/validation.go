package trading

import (
	"fmt"

	"league-office-service/internal/domain"
)

// Roster bounds a trade must leave every participant inside.
const (
	MinRosterSize = 12
	MaxRosterSize = 15
)

// Salary-matching terms for teams over the cap: incoming salary may not
// exceed outgoing times the match ratio, plus the allowance.
const (
	salaryMatchRatio     = 1.25
	salaryMatchAllowance = 100_000
)

// Player movement restrictions, in days.
const (
	signingFreezeDays  = 60
	retradeWarningDays = 30
)

// Validation is the structured outcome of proposal checks. Errors block the
// trade; warnings are advisory only.
type Validation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateProposal checks salary matching, roster bounds, and player-level
// restrictions for every team in the proposal.
func ValidateProposal(p domain.TradeProposal, teams map[string]domain.TeamContext, restrictions map[string]domain.PlayerRestrictions) Validation {
	v := Validation{}

	if len(p.TeamIDs) < 2 {
		v.Errors = append(v.Errors, "a trade needs at least two teams")
		v.Valid = false
		return v
	}

	for _, teamID := range p.TeamIDs {
		ctx, ok := teams[teamID]
		if !ok {
			v.Errors = append(v.Errors, fmt.Sprintf("no context for team %s", teamID))
			continue
		}

		incoming := p.Incoming(teamID)
		outgoing := p.Outgoing(teamID)
		checkSalaryMatch(&v, ctx, playerSalarySum(incoming), playerSalarySum(outgoing))
		checkRosterBounds(&v, ctx, playerCount(incoming), playerCount(outgoing))
	}

	for _, asset := range p.Assets {
		if asset.Type != domain.AssetPlayer {
			continue
		}
		checkPlayerRestrictions(&v, asset, restrictions[asset.PlayerID])
	}

	v.Valid = len(v.Errors) == 0
	return v
}

// checkSalaryMatch enforces the over-the-cap matching rule, or plain cap
// room for teams under the cap.
func checkSalaryMatch(v *Validation, ctx domain.TeamContext, incoming, outgoing int64) {
	if ctx.CapSpace <= 0 {
		limit := int64(float64(outgoing)*salaryMatchRatio) + salaryMatchAllowance
		if incoming > limit {
			v.Errors = append(v.Errors, fmt.Sprintf(
				"team %s is over the cap: incoming $%d exceeds matching limit $%d", ctx.TeamID, incoming, limit))
		}
		return
	}
	if incoming > ctx.CapSpace+outgoing {
		v.Errors = append(v.Errors, fmt.Sprintf(
			"team %s lacks cap space: incoming $%d exceeds $%d", ctx.TeamID, incoming, ctx.CapSpace+outgoing))
	}
}

func checkRosterBounds(v *Validation, ctx domain.TeamContext, in, out int) {
	size := ctx.RosterSize - out + in
	if size < MinRosterSize {
		v.Errors = append(v.Errors, fmt.Sprintf("team %s would drop to %d players, minimum is %d", ctx.TeamID, size, MinRosterSize))
	}
	if size > MaxRosterSize {
		v.Errors = append(v.Errors, fmt.Sprintf("team %s would carry %d players, maximum is %d", ctx.TeamID, size, MaxRosterSize))
	}
}

func checkPlayerRestrictions(v *Validation, asset domain.TradeAsset, r domain.PlayerRestrictions) {
	if r.PlayerID == "" {
		return
	}
	if r.DaysSinceSigned >= 0 && r.DaysSinceSigned < signingFreezeDays {
		v.Errors = append(v.Errors, fmt.Sprintf(
			"player %s signed %d days ago and cannot be traded for %d days", asset.PlayerID, r.DaysSinceSigned, signingFreezeDays))
	}
	if r.DaysSinceTraded >= 0 && r.DaysSinceTraded < retradeWarningDays {
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"player %s was acquired %d days ago", asset.PlayerID, r.DaysSinceTraded))
	}
	if r.NoTradeClause {
		v.Warnings = append(v.Warnings, fmt.Sprintf("player %s holds a no-trade clause", asset.PlayerID))
	}
}

func playerSalarySum(assets []domain.TradeAsset) int64 {
	var sum int64
	for _, a := range assets {
		if a.Type == domain.AssetPlayer {
			sum += a.Salary
		}
	}
	return sum
}

func playerCount(assets []domain.TradeAsset) int {
	n := 0
	for _, a := range assets {
		if a.Type == domain.AssetPlayer {
			n++
		}
	}
	return n
}

package trading

import (
	"fmt"

	"league-office-service/internal/domain"
)

// Decision is a team's verdict on a proposal.
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionCounter Decision = "counter"
	DecisionReject  Decision = "reject"
)

// Thresholds for evaluating a proposal on its face (before strategy-specific
// CPU appetite is applied).
const (
	acceptNet  = 10.0
	counterNet = -5.0
)

// Evaluation scores a proposal from one team's perspective, with a
// human-readable reasoning trail: one line per asset plus a summary.
type Evaluation struct {
	TeamID        string   `json:"teamId"`
	Strategy      Strategy `json:"strategy"`
	IncomingValue float64  `json:"incomingValue"`
	OutgoingValue float64  `json:"outgoingValue"`
	Net           float64  `json:"net"`
	Decision      Decision `json:"decision"`
	Reasoning     []string `json:"reasoning"`
}

// EvaluateForTeam values every asset the team sends and receives under its
// strategy profile and thresholds the net into accept, counter, or reject.
func EvaluateForTeam(teamID string, p domain.TradeProposal, ctx domain.TeamContext, currentYear int) Evaluation {
	profile := ProfileForTeam(ctx)
	eval := Evaluation{TeamID: teamID, Strategy: profile.Strategy}

	for _, asset := range p.Incoming(teamID) {
		value := AssetValue(asset, currentYear, profile)
		eval.IncomingValue += value
		eval.Reasoning = append(eval.Reasoning, fmt.Sprintf("receive %s: %+.1f", describeAsset(asset), value))
	}
	for _, asset := range p.Outgoing(teamID) {
		value := AssetValue(asset, currentYear, profile)
		eval.OutgoingValue += value
		eval.Reasoning = append(eval.Reasoning, fmt.Sprintf("send %s: %+.1f", describeAsset(asset), -value))
	}

	eval.Net = eval.IncomingValue - eval.OutgoingValue
	switch {
	case eval.Net > acceptNet:
		eval.Decision = DecisionAccept
	case eval.Net > counterNet:
		eval.Decision = DecisionCounter
	default:
		eval.Decision = DecisionReject
	}
	eval.Reasoning = append(eval.Reasoning, fmt.Sprintf(
		"net %+.1f as a %s team: %s", eval.Net, profile.Strategy, eval.Decision))
	return eval
}

// RespondToProposal is the CPU's answer to an incoming offer. It reuses the
// same valuation as EvaluateForTeam but applies the strategy's own accept
// threshold, so a rebuilding front office says yes to smaller wins than a
// contender does.
func RespondToProposal(teamID string, p domain.TradeProposal, ctx domain.TeamContext, currentYear int) Evaluation {
	profile := ProfileForTeam(ctx)
	eval := EvaluateForTeam(teamID, p, ctx, currentYear)

	switch {
	case eval.Net >= profile.AcceptThreshold:
		eval.Decision = DecisionAccept
	case eval.Net >= profile.AcceptThreshold-15:
		eval.Decision = DecisionCounter
	default:
		eval.Decision = DecisionReject
	}
	eval.Reasoning = append(eval.Reasoning, fmt.Sprintf(
		"against a %s accept threshold of %.0f: %s", profile.Strategy, profile.AcceptThreshold, eval.Decision))
	return eval
}

func describeAsset(a domain.TradeAsset) string {
	switch a.Type {
	case domain.AssetPlayer:
		return fmt.Sprintf("player %s (%d ovr, age %d)", a.PlayerID, a.Overall, a.Age)
	case domain.AssetDraftPick:
		return fmt.Sprintf("%d round-%d pick", a.PickYear, a.PickRound)
	case domain.AssetCash:
		return fmt.Sprintf("$%dM cash", a.CashAmount/1e6)
	default:
		return "unknown asset"
	}
}

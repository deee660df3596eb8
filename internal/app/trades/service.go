// Package trades fronts the trade engine for the HTTP layer.
package trades

import (
	"log/slog"

	"league-office-service/internal/domain"
	"league-office-service/internal/logging"
	"league-office-service/internal/metrics"
	"league-office-service/internal/trading"
)

// Service evaluates and validates trade proposals.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewService constructs a Service with the provided dependencies.
func NewService(logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{logger: logger, metrics: recorder}
}

// Validate checks a proposal against cap and roster rules.
func (s *Service) Validate(p domain.TradeProposal, teams map[string]domain.TeamContext, restrictions map[string]domain.PlayerRestrictions) trading.Validation {
	return trading.ValidateProposal(p, teams, restrictions)
}

// Evaluate scores a proposal from one team's perspective.
func (s *Service) Evaluate(teamID string, p domain.TradeProposal, ctx domain.TeamContext, currentYear int) trading.Evaluation {
	eval := trading.EvaluateForTeam(teamID, p, ctx, currentYear)
	s.metrics.RecordTradeEvaluation(string(eval.Decision))
	logging.Info(s.logger, "trade evaluated",
		logging.FieldTeam, teamID,
		"decision", string(eval.Decision),
		"net", eval.Net,
	)
	return eval
}

// Respond produces the CPU's answer to an incoming proposal, applying the
// team's strategy-specific accept threshold.
func (s *Service) Respond(teamID string, p domain.TradeProposal, ctx domain.TeamContext, currentYear int) trading.Evaluation {
	eval := trading.RespondToProposal(teamID, p, ctx, currentYear)
	s.metrics.RecordTradeEvaluation(string(eval.Decision))
	return eval
}

// Strategy classifies a team's competitive posture.
func (s *Service) Strategy(ctx domain.TeamContext) trading.Strategy {
	return trading.DetermineStrategy(ctx)
}

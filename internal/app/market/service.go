// Package market fronts the free-agency engine for the HTTP layer.
package market

import (
	"log/slog"

	"league-office-service/internal/domain"
	"league-office-service/internal/freeagency"
	"league-office-service/internal/logging"
	"league-office-service/internal/metrics"
	"league-office-service/internal/rng"
)

// Service runs free-agency market rounds.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	rand    rng.Source
}

// NewService constructs a Service with the provided dependencies.
func NewService(logger *slog.Logger, recorder *metrics.Recorder, r rng.Source) *Service {
	return &Service{logger: logger, metrics: recorder, rand: r}
}

// Preferences derives an agent's preference vector from hidden traits.
func (s *Service) Preferences(traits domain.Traits, age, overall int) domain.Preferences {
	return freeagency.GeneratePreferences(traits, age, overall, s.rand)
}

// AskingSalary computes an agent's opening ask.
func (s *Service) AskingSalary(fa domain.FreeAgent, traits domain.Traits) int64 {
	return freeagency.AskingSalary(fa.Overall, fa.Age, fa.YearsInLeague, fa.Potential, traits)
}

// CPUOffers generates competing offers from the most interested teams.
func (s *Service) CPUOffers(fa domain.FreeAgent, teams []domain.TeamContext, count int) []domain.ContractOffer {
	return freeagency.GenerateCPUOffers(fa, teams, count, s.rand)
}

// ScoreOffer rates one offer against the agent's preferences.
func (s *Service) ScoreOffer(fa domain.FreeAgent, offer domain.ContractOffer, team domain.TeamContext) freeagency.OfferScore {
	s.metrics.RecordOffersScored(1)
	return freeagency.ScoreOffer(fa, offer, team)
}

// Evaluate scores every offer and decides whether the agent signs.
func (s *Service) Evaluate(fa domain.FreeAgent, offers []domain.ContractOffer, teams map[string]domain.TeamContext) freeagency.Decision {
	decision := freeagency.EvaluateOffers(fa, offers, teams)
	s.metrics.RecordOffersScored(len(decision.Scores))
	if decision.Accepted != nil {
		logging.Info(s.logger, "offer accepted",
			logging.FieldTeam, decision.Accepted.TeamID,
			"player_id", fa.PlayerID,
			"score", decision.Accepted.Total,
		)
	}
	return decision
}

// ValidateOffer checks an offer against signing rules.
func (s *Service) ValidateOffer(offer domain.ContractOffer, fa domain.FreeAgent, team domain.TeamContext) freeagency.OfferValidation {
	return freeagency.ValidateOffer(offer, fa, team)
}

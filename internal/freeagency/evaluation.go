package freeagency

import (
	"fmt"

	"league-office-service/internal/contracts"
	"league-office-service/internal/domain"
)

// Decision is the outcome of a market evaluation round. Accepted is nil when
// no offer cleared the agent's threshold; Scores always carries the full map
// so callers can show why offers fell short.
type Decision struct {
	Accepted  *OfferScore  `json:"accepted,omitempty"`
	Scores    []OfferScore `json:"scores"`
	Threshold float64      `json:"threshold"`
}

// AcceptanceThreshold is the score an offer must reach before the agent
// signs. It escalates with ability: better players are harder to land even
// on a good offer.
func AcceptanceThreshold(overall int) float64 {
	return 50 + float64(overall-70)
}

// EvaluateOffers scores every offer against the agent's preferences and
// accepts the single best one if it clears the escalating threshold. The
// agent's status is not mutated here; market lifecycle is the caller's job.
func EvaluateOffers(fa domain.FreeAgent, offers []domain.ContractOffer, teams map[string]domain.TeamContext) Decision {
	decision := Decision{
		Scores:    make([]OfferScore, 0, len(offers)),
		Threshold: AcceptanceThreshold(fa.Overall),
	}

	bestIdx := -1
	for _, offer := range offers {
		score := ScoreOffer(fa, offer, teams[offer.TeamID])
		decision.Scores = append(decision.Scores, score)
		if bestIdx < 0 || score.Total > decision.Scores[bestIdx].Total {
			bestIdx = len(decision.Scores) - 1
		}
	}

	if bestIdx >= 0 && decision.Scores[bestIdx].Total >= decision.Threshold {
		best := decision.Scores[bestIdx]
		decision.Accepted = &best
	}
	return decision
}

// OfferValidation separates blocking problems from advisory ones.
type OfferValidation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// MaxRosterSize caps how many players a team may carry.
const MaxRosterSize = 15

// ValidateOffer checks an offer against hard signing rules and flags soft
// concerns. Errors block the signing; warnings are informational.
func ValidateOffer(offer domain.ContractOffer, fa domain.FreeAgent, team domain.TeamContext) OfferValidation {
	v := OfferValidation{}

	if team.RosterSize >= MaxRosterSize {
		v.Errors = append(v.Errors, fmt.Sprintf("roster is full (%d players)", team.RosterSize))
	}
	if offer.Years < 1 || offer.Years > contracts.MaxContractYears {
		v.Errors = append(v.Errors, fmt.Sprintf("contract length %d years is outside 1-%d", offer.Years, contracts.MaxContractYears))
	}
	if offer.SalaryPerYear > team.CapSpace && offer.SalaryPerYear > contracts.MidLevelException {
		v.Errors = append(v.Errors, fmt.Sprintf("cannot afford $%d/year with $%d cap space", offer.SalaryPerYear, team.CapSpace))
	}

	market := contracts.MarketValue(fa.Overall, fa.Age, fa.YearsInLeague, fa.Potential)
	if offer.SalaryPerYear*2 < market {
		v.Warnings = append(v.Warnings, fmt.Sprintf("offer is more than 50%% below market value ($%d)", market))
	}
	if offer.SalaryPerYear*2 > market*3 {
		v.Warnings = append(v.Warnings, fmt.Sprintf("offer is more than 50%% above market value ($%d)", market))
	}
	if afford := contracts.ClassifySigning(team.Payroll, offer.SalaryPerYear); afford.TaxBill > 0 {
		v.Warnings = append(v.Warnings, fmt.Sprintf("signing incurs $%d in luxury tax", afford.TaxBill))
	}

	v.Valid = len(v.Errors) == 0
	return v
}

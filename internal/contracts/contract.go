package contracts

import (
	"github.com/google/uuid"

	"league-office-service/internal/domain"
)

// MaxContractYears is the longest deal the league allows.
const MaxContractYears = 5

// FromOffer converts an accepted offer into an active contract with the
// standard compounding raise applied across its years. Years beyond the
// league maximum are dropped.
func FromOffer(offer domain.ContractOffer, signedYear int) domain.Contract {
	years := offer.Years
	if years < 1 {
		years = 1
	}
	if years > MaxContractYears {
		years = MaxContractYears
	}

	return domain.Contract{
		ID:           uuid.NewString(),
		TeamID:       offer.TeamID,
		PlayerID:     offer.PlayerID,
		Salaries:     YearlySalaries(offer.SalaryPerYear, years, DefaultRaise),
		PlayerOption: offer.PlayerOption,
		TeamOption:   offer.TeamOption,
		SignedYear:   signedYear,
		Status:       domain.ContractActive,
	}
}

// TotalValue sums a contract's remaining salaries.
func TotalValue(c domain.Contract) int64 {
	var total int64
	for _, s := range c.Salaries {
		total += s
	}
	return total
}

package contracts

import (
	"testing"

	"league-office-service/internal/domain"
)

func TestFromOffer(t *testing.T) {
	offer := domain.ContractOffer{
		ID:            "offer-1",
		TeamID:        "team-1",
		PlayerID:      "player-1",
		Years:         3,
		SalaryPerYear: 12_000_000,
		PlayerOption:  true,
	}

	c := FromOffer(offer, 2025)
	if c.ID == "" {
		t.Error("contract should get its own id")
	}
	if c.TeamID != "team-1" || c.PlayerID != "player-1" {
		t.Errorf("identity not carried over: %+v", c)
	}
	if len(c.Salaries) != 3 {
		t.Fatalf("got %d salary years, want 3", len(c.Salaries))
	}
	if c.Salaries[0] != 12_000_000 {
		t.Errorf("first-year salary = %d, want 12000000", c.Salaries[0])
	}
	if !c.PlayerOption || c.TeamOption {
		t.Errorf("options not carried over: %+v", c)
	}
	if c.SignedYear != 2025 || c.Status != domain.ContractActive {
		t.Errorf("unexpected contract state: %+v", c)
	}
}

func TestFromOfferClampsYears(t *testing.T) {
	tests := []struct {
		years int
		want  int
	}{
		{0, 1},
		{-2, 1},
		{5, 5},
		{8, 5},
	}
	for _, tc := range tests {
		c := FromOffer(domain.ContractOffer{Years: tc.years, SalaryPerYear: 5_000_000}, 2025)
		if len(c.Salaries) != tc.want {
			t.Errorf("years %d: got %d salary years, want %d", tc.years, len(c.Salaries), tc.want)
		}
	}
}

func TestTotalValue(t *testing.T) {
	c := domain.Contract{Salaries: []int64{10_000_000, 10_800_000, 11_700_000}}
	if got := TotalValue(c); got != 32_500_000 {
		t.Errorf("TotalValue = %d, want 32500000", got)
	}
	if got := TotalValue(domain.Contract{}); got != 0 {
		t.Errorf("empty contract TotalValue = %d, want 0", got)
	}
}

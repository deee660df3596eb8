package trading

import (
	"math"
	"testing"

	"league-office-service/internal/domain"
)

var neutralProfile = Profile{
	Strategy:         StrategyCompeting,
	VeteranModifier:  1.0,
	ProspectModifier: 1.0,
	PlayerModifier:   1.0,
	PickModifier:     1.0,
	AcceptThreshold:  8,
}

func TestPlayerValueAgeCurve(t *testing.T) {
	salary := expectedSalary(80)

	prospect := PlayerValue(80, 92, 22, salary, neutralProfile)
	prime := PlayerValue(80, 80, 27, salary, neutralProfile)
	aging := PlayerValue(80, 80, 34, salary, neutralProfile)

	// 22 with +12 upside: 120 + 9.6; 27: 120 + 10; 34: 120 - 12.
	if math.Abs(prospect-129.6) > 0.01 {
		t.Errorf("prospect value = %.2f, want 129.60", prospect)
	}
	if math.Abs(prime-130) > 0.01 {
		t.Errorf("prime value = %.2f, want 130.00", prime)
	}
	if math.Abs(aging-108) > 0.01 {
		t.Errorf("aging value = %.2f, want 108.00", aging)
	}
}

func TestPlayerValueContractTerm(t *testing.T) {
	fair := PlayerValue(80, 80, 27, expectedSalary(80), neutralProfile)
	bargain := PlayerValue(80, 80, 27, expectedSalary(80)-5_000_000, neutralProfile)
	overpaid := PlayerValue(80, 80, 27, expectedSalary(80)+5_000_000, neutralProfile)

	if math.Abs(bargain-fair-10) > 0.01 {
		t.Errorf("bargain premium = %.2f, want 10", bargain-fair)
	}
	if math.Abs(fair-overpaid-10) > 0.01 {
		t.Errorf("overpay penalty = %.2f, want 10", fair-overpaid)
	}
}

func TestArchetypeModifier(t *testing.T) {
	profile := ProfileFor(StrategyContending)

	tests := []struct {
		name                    string
		overall, potential, age int
		want                    float64
	}{
		{"veteran", 80, 80, 30, profile.VeteranModifier},
		{"prospect", 72, 85, 21, profile.ProspectModifier},
		{"prime role player", 74, 76, 27, profile.PlayerModifier},
		{"old but below veteran cutoff", 70, 70, 30, profile.PlayerModifier},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := archetypeModifier(tc.overall, tc.potential, tc.age, profile); got != tc.want {
				t.Errorf("archetypeModifier = %.2f, want %.2f", got, tc.want)
			}
		})
	}
}

func TestPickValue(t *testing.T) {
	tests := []struct {
		name                       string
		year, round, wins, current int
		want                       float64
	}{
		{"current second rounder", 2025, 2, 50, 2025, 15},
		{"late first", 2025, 1, 60, 2025, 40},
		{"mid lottery", 2025, 1, 30, 2025, 48},
		{"high lottery", 2025, 1, 20, 2025, 55},
		{"top pick", 2025, 1, 10, 2025, 65},
		{"future late first", 2027, 1, 60, 2025, 32.4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PickValue(tc.year, tc.round, tc.wins, tc.current, neutralProfile)
			if math.Abs(got-tc.want) > 0.01 {
				t.Errorf("PickValue = %.2f, want %.2f", got, tc.want)
			}
		})
	}
}

func TestPickValueStrategyModifier(t *testing.T) {
	rebuilding := ProfileFor(StrategyRebuilding)
	contending := ProfileFor(StrategyContending)

	base := PickValue(2025, 1, 20, 2025, neutralProfile)
	if got := PickValue(2025, 1, 20, 2025, rebuilding); math.Abs(got-base*1.5) > 0.01 {
		t.Errorf("rebuilding pick value = %.2f, want %.2f", got, base*1.5)
	}
	if got := PickValue(2025, 1, 20, 2025, contending); math.Abs(got-base*0.6) > 0.01 {
		t.Errorf("contending pick value = %.2f, want %.2f", got, base*0.6)
	}
}

func TestCashValue(t *testing.T) {
	if got := CashValue(3_000_000); got != 3 {
		t.Errorf("CashValue(3M) = %.2f, want 3", got)
	}
	if got := CashValue(0); got != 0 {
		t.Errorf("CashValue(0) = %.2f, want 0", got)
	}
}

func TestAssetValueDispatch(t *testing.T) {
	tests := []struct {
		name  string
		asset domain.TradeAsset
		want  float64
	}{
		{
			name:  "player",
			asset: domain.TradeAsset{Type: domain.AssetPlayer, Overall: 80, Potential: 80, Age: 27, Salary: expectedSalary(80)},
			want:  130,
		},
		{
			name:  "pick",
			asset: domain.TradeAsset{Type: domain.AssetDraftPick, PickYear: 2025, PickRound: 2, OriginalTeamWins: 50},
			want:  15,
		},
		{
			name:  "cash",
			asset: domain.TradeAsset{Type: domain.AssetCash, CashAmount: 2_000_000},
			want:  2,
		},
		{
			name:  "unknown",
			asset: domain.TradeAsset{Type: "mascot"},
			want:  0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AssetValue(tc.asset, 2025, neutralProfile)
			if math.Abs(got-tc.want) > 0.01 {
				t.Errorf("AssetValue = %.2f, want %.2f", got, tc.want)
			}
		})
	}
}

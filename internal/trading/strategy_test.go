package trading

import (
	"testing"

	"league-office-service/internal/domain"
	"league-office-service/internal/testutil"
)

func TestDetermineStrategy(t *testing.T) {
	tests := []struct {
		name string
		ctx  domain.TeamContext
		want Strategy
	}{
		{
			name: "contender",
			ctx:  testutil.ContendingTeam("t1"),
			want: StrategyContending,
		},
		{
			name: "winner outside its window still competes",
			ctx:  domain.TeamContext{Wins: 55, Losses: 27, StarCount: 2, InWindow: false},
			want: StrategyCompeting,
		},
		{
			name: "rebuilder",
			ctx:  testutil.RebuildingTeam("t2"),
			want: StrategyRebuilding,
		},
		{
			name: "bad but old team retools",
			ctx:  domain.TeamContext{Wins: 20, Losses: 62, AverageAge: 29, YoungTalentCount: 2, StarCount: 1},
			want: StrategyRetooling,
		},
		{
			name: "mid team with young core retools",
			ctx:  domain.TeamContext{Wins: 40, Losses: 42, StarCount: 1, YoungTalentCount: 3, AverageAge: 25},
			want: StrategyRetooling,
		},
		{
			name: "mid team with vets competes",
			ctx:  domain.TeamContext{Wins: 40, Losses: 42, StarCount: 2, YoungTalentCount: 1, AverageAge: 28},
			want: StrategyCompeting,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetermineStrategy(tc.ctx); got != tc.want {
				t.Errorf("DetermineStrategy = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestProfileFor(t *testing.T) {
	for _, s := range []Strategy{StrategyContending, StrategyCompeting, StrategyRetooling, StrategyRebuilding} {
		p := ProfileFor(s)
		if p.Strategy != s {
			t.Errorf("ProfileFor(%s).Strategy = %s", s, p.Strategy)
		}
		if p.AcceptThreshold <= 0 {
			t.Errorf("ProfileFor(%s).AcceptThreshold = %.0f", s, p.AcceptThreshold)
		}
	}

	if got := ProfileFor("unknown"); got.Strategy != StrategyCompeting {
		t.Errorf("unknown strategy should fall back to competing, got %s", got.Strategy)
	}
}

func TestProfileShapes(t *testing.T) {
	contending := ProfileFor(StrategyContending)
	rebuilding := ProfileFor(StrategyRebuilding)

	if contending.VeteranModifier <= rebuilding.VeteranModifier {
		t.Error("contenders should value veterans more than rebuilders")
	}
	if contending.PickModifier >= rebuilding.PickModifier {
		t.Error("rebuilders should value picks more than contenders")
	}
	if contending.AcceptThreshold <= rebuilding.AcceptThreshold {
		t.Error("contenders should demand a bigger win than rebuilders")
	}
}

package freeagency

import (
	"testing"

	"league-office-service/internal/contracts"
	"league-office-service/internal/domain"
	"league-office-service/internal/rng"
)

func TestGeneratePreferencesClamped(t *testing.T) {
	r := rng.New(1)
	traits := []domain.Traits{
		{Greed: 0, Ego: 0, Loyalty: 100},
		{Greed: 100, Ego: 100, Loyalty: 0},
		{Greed: 50, Ego: 50, Loyalty: 50},
	}
	for _, tr := range traits {
		for _, age := range []int{19, 27, 38} {
			p := GeneratePreferences(tr, age, 80, r)
			for name, v := range map[string]int{
				"money": p.Money, "winning": p.Winning, "role": p.Role, "market": p.Market,
			} {
				if v < 0 || v > 100 {
					t.Fatalf("%s preference %d outside [0,100] for traits %+v age %d", name, v, tr, age)
				}
			}
		}
	}
}

func TestGeneratePreferencesTracksTraits(t *testing.T) {
	r := rng.New(2)
	greedy := GeneratePreferences(domain.Traits{Greed: 95, Ego: 50, Loyalty: 50}, 27, 80, r)
	modest := GeneratePreferences(domain.Traits{Greed: 5, Ego: 50, Loyalty: 50}, 27, 80, r)
	if greedy.Money <= modest.Money {
		t.Errorf("greed 95 money preference (%d) should exceed greed 5 (%d)", greedy.Money, modest.Money)
	}

	old := GeneratePreferences(domain.Traits{Greed: 50, Ego: 50, Loyalty: 50}, 36, 80, r)
	young := GeneratePreferences(domain.Traits{Greed: 50, Ego: 50, Loyalty: 50}, 20, 80, r)
	if old.Winning <= young.Winning {
		t.Errorf("36-year-old winning preference (%d) should exceed a 20-year-old's (%d)", old.Winning, young.Winning)
	}
}

func TestGeneratePreferencesDeterministic(t *testing.T) {
	traits := domain.Traits{Greed: 60, Ego: 40, Loyalty: 70}
	a := GeneratePreferences(traits, 28, 85, rng.New(99))
	b := GeneratePreferences(traits, 28, 85, rng.New(99))
	if a != b {
		t.Fatalf("same seed produced %+v and %+v", a, b)
	}
}

func TestAskingSalary(t *testing.T) {
	market := contracts.MarketValue(85, 27, 6, 87)

	modest := AskingSalary(85, 27, 6, 87, domain.Traits{Greed: 0})
	greedy := AskingSalary(85, 27, 6, 87, domain.Traits{Greed: 100})

	if modest%100_000 != 0 || greedy%100_000 != 0 {
		t.Fatalf("asks not rounded to $100K: %d, %d", modest, greedy)
	}
	if modest >= market {
		t.Errorf("greed 0 ask (%d) should sit below market (%d)", modest, market)
	}
	if greedy <= market {
		t.Errorf("greed 100 ask (%d) should sit above market (%d)", greedy, market)
	}
	if greedy <= modest {
		t.Errorf("greedy ask (%d) should exceed modest ask (%d)", greedy, modest)
	}
}

package contracts

import "testing"

func TestMaxSalary(t *testing.T) {
	tests := []struct {
		years int
		want  int64
	}{
		{0, 35_000_000},
		{5, 35_000_000},
		{6, 42_000_000},
		{9, 42_000_000},
		{10, 49_000_000},
		{15, 49_000_000},
	}
	for _, tc := range tests {
		if got := MaxSalary(tc.years); got != tc.want {
			t.Errorf("MaxSalary(%d) = %d, want %d", tc.years, got, tc.want)
		}
	}
}

func TestMinSalary(t *testing.T) {
	tests := []struct {
		years int
		want  int64
	}{
		{-1, 1_100_000},
		{0, 1_100_000},
		{1, 1_800_000},
		{9, 3_200_000},
		{10, 3_300_000},
		{20, 3_300_000},
	}
	for _, tc := range tests {
		if got := MinSalary(tc.years); got != tc.want {
			t.Errorf("MinSalary(%d) = %d, want %d", tc.years, got, tc.want)
		}
	}
}

func TestMarketValueBounds(t *testing.T) {
	for overall := 40; overall <= 99; overall++ {
		for _, age := range []int{20, 27, 35} {
			v := MarketValue(overall, age, 5, overall+5)
			if v < MinSalary(5) || v > MaxSalary(5) {
				t.Fatalf("MarketValue(%d, %d) = %d outside [%d, %d]",
					overall, age, v, MinSalary(5), MaxSalary(5))
			}
			if v%100_000 != 0 {
				t.Fatalf("MarketValue(%d, %d) = %d not rounded to $100K", overall, age, v)
			}
		}
	}
}

func TestMarketValueMonotonicInOverall(t *testing.T) {
	for _, age := range []int{21, 27, 34} {
		prev := int64(0)
		for overall := 40; overall <= 99; overall++ {
			v := MarketValue(overall, age, 5, 85)
			if v < prev {
				t.Fatalf("MarketValue decreased at overall %d, age %d: %d < %d", overall, age, v, prev)
			}
			prev = v
		}
	}
}

func TestMarketValueAgeCurve(t *testing.T) {
	young := MarketValue(80, 21, 3, 90)
	prime := MarketValue(80, 27, 3, 90)
	old := MarketValue(80, 35, 3, 90)

	if young <= prime {
		t.Errorf("high-potential 21-year-old (%d) should out-earn a 27-year-old (%d)", young, prime)
	}
	if old >= prime {
		t.Errorf("35-year-old (%d) should earn less than a 27-year-old (%d)", old, prime)
	}
}

func TestYearlySalaries(t *testing.T) {
	got := YearlySalaries(10_000_000, 3, DefaultRaise)
	want := []int64{10_000_000, 10_800_000, 11_700_000}
	if len(got) != len(want) {
		t.Fatalf("got %d years, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("year %d = %d, want %d", i, got[i], want[i])
		}
	}

	if YearlySalaries(10_000_000, 0, DefaultRaise) != nil {
		t.Error("expected nil for zero years")
	}
}

func TestLuxuryTax(t *testing.T) {
	tests := []struct {
		payroll int64
		want    int64
	}{
		{150_000_000, 0},
		{LuxuryTaxLine, 0},
		{172_000_000, 3_000_000},
		{175_000_000, 7_500_000},
		{180_000_000, 16_250_000},
		{185_000_000, 28_750_000},
		{190_000_000, 45_000_000},
		{195_000_000, 65_000_000},
	}
	for _, tc := range tests {
		if got := LuxuryTax(tc.payroll); got != tc.want {
			t.Errorf("LuxuryTax(%d) = %d, want %d", tc.payroll, got, tc.want)
		}
	}
}

func TestLuxuryTaxMonotonic(t *testing.T) {
	prev := int64(-1)
	for payroll := LuxuryTaxLine; payroll <= LuxuryTaxLine+40_000_000; payroll += 1_000_000 {
		tax := LuxuryTax(payroll)
		if tax < prev {
			t.Fatalf("tax decreased at payroll %d: %d < %d", payroll, tax, prev)
		}
		prev = tax
	}
}

func TestClassifySigning(t *testing.T) {
	tests := []struct {
		name    string
		payroll int64
		salary  int64
		want    SigningMethod
	}{
		{"under the cap", 100_000_000, 20_000_000, SignWithCapSpace},
		{"over cap under tax", 140_000_000, 20_000_000, SignWithException},
		{"into the tax", 160_000_000, 15_000_000, SignIntoLuxuryTax},
		{"into the first apron", 170_000_000, 10_000_000, SignIntoFirstApron},
		{"past the second apron", 185_000_000, 10_000_000, SignIntoSecondApron},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifySigning(tc.payroll, tc.salary)
			if !got.CanSign {
				t.Fatal("CanSign should always be true")
			}
			if got.Method != tc.want {
				t.Errorf("method = %s, want %s", got.Method, tc.want)
			}
			if got.CombinedPayroll != tc.payroll+tc.salary {
				t.Errorf("combined payroll = %d, want %d", got.CombinedPayroll, tc.payroll+tc.salary)
			}
		})
	}
}

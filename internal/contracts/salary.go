// Package contracts holds the pure salary math shared by the free-agency and
// trade engines: cap figures, market value, salary curves, and luxury tax.
package contracts

import "math"

// League-wide cap figures in dollars.
const (
	SalaryCap         int64 = 140_000_000
	LuxuryTaxLine     int64 = 170_000_000
	FirstApron        int64 = 178_000_000
	SecondApron       int64 = 189_000_000
	MidLevelException int64 = 12_900_000

	// DefaultRaise is the standard year-over-year raise on multi-year deals.
	DefaultRaise = 0.08

	roundingUnit int64 = 100_000
)

// minSalaryByYears covers league years 0-9; beyond that the veteran minimum
// is flat.
var minSalaryByYears = []int64{
	1_100_000, 1_800_000, 2_000_000, 2_100_000, 2_200_000,
	2_400_000, 2_600_000, 2_800_000, 3_000_000, 3_200_000,
}

const veteranMinimum int64 = 3_300_000

// MaxSalary returns the maximum single-season salary for a player with the
// given league tenure: 25%, 30%, or 35% of the cap at 0, 6, and 10 years.
func MaxSalary(yearsInLeague int) int64 {
	switch {
	case yearsInLeague >= 10:
		return SalaryCap * 35 / 100
	case yearsInLeague >= 6:
		return SalaryCap * 30 / 100
	default:
		return SalaryCap * 25 / 100
	}
}

// MinSalary returns the minimum salary for the given league tenure.
func MinSalary(yearsInLeague int) int64 {
	if yearsInLeague < 0 {
		yearsInLeague = 0
	}
	if yearsInLeague >= len(minSalaryByYears) {
		return veteranMinimum
	}
	return minSalaryByYears[yearsInLeague]
}

// valuePercent maps overall rating onto [0.05, 1.0]. Piecewise linear between
// fixed breakpoints, flat at the extremes.
func valuePercent(overall int) float64 {
	type point struct {
		overall int
		pct     float64
	}
	curve := []point{
		{65, 0.10}, {70, 0.20}, {75, 0.35}, {80, 0.55}, {85, 0.75}, {90, 1.00},
	}
	if overall < curve[0].overall {
		return 0.05
	}
	if overall >= curve[len(curve)-1].overall {
		return 1.0
	}
	for i := 1; i < len(curve); i++ {
		if overall < curve[i].overall {
			lo, hi := curve[i-1], curve[i]
			span := float64(hi.overall - lo.overall)
			return lo.pct + (hi.pct-lo.pct)*float64(overall-lo.overall)/span
		}
	}
	return 1.0
}

// ageMultiplier boosts young players by potential and discounts aging ones.
// The discount bottoms out at 0.5x.
func ageMultiplier(age, potential int) float64 {
	switch {
	case age < 24:
		boost := float64(potential-70) / 100
		if boost < 0 {
			boost = 0
		}
		return math.Min(1.0+boost, 1.3)
	case age > 32:
		return math.Max(1.0-0.1*float64(age-32), 0.5)
	default:
		return 1.0
	}
}

// MarketValue estimates a fair single-season salary for a player, always
// within [MinSalary, MaxSalary] and rounded to the nearest $100K.
func MarketValue(overall, age, yearsInLeague, potential int) int64 {
	minSal := MinSalary(yearsInLeague)
	maxSal := MaxSalary(yearsInLeague)

	pct := valuePercent(overall) * ageMultiplier(age, potential)
	if pct > 1.0 {
		pct = 1.0
	}

	value := roundToUnit(minSal + int64(pct*float64(maxSal-minSal)))
	if value < minSal {
		return minSal
	}
	if value > maxSal {
		return maxSal
	}
	return value
}

// YearlySalaries expands a base salary into a per-year curve with a
// compounding raise, each season rounded to $100K.
func YearlySalaries(base int64, years int, raise float64) []int64 {
	if years <= 0 {
		return nil
	}
	salaries := make([]int64, years)
	current := float64(base)
	for i := 0; i < years; i++ {
		salaries[i] = roundToUnit(int64(current))
		current *= 1 + raise
	}
	return salaries
}

// taxBrackets are $5M wide above the luxury-tax line; the last multiplier
// applies to everything beyond the final boundary.
var taxBrackets = []struct {
	width      int64
	multiplier float64
}{
	{5_000_000, 1.50},
	{5_000_000, 1.75},
	{5_000_000, 2.50},
	{5_000_000, 3.25},
	{0, 4.00},
}

// LuxuryTax computes the progressive tax bill on payroll above the tax line.
// Zero at or below the line.
func LuxuryTax(payroll int64) int64 {
	over := payroll - LuxuryTaxLine
	if over <= 0 {
		return 0
	}
	var tax float64
	for _, b := range taxBrackets {
		if b.width == 0 || over < b.width {
			tax += float64(over) * b.multiplier
			break
		}
		tax += float64(b.width) * b.multiplier
		over -= b.width
	}
	return int64(tax)
}

// SigningMethod classifies how a contract fits under the cap structure.
type SigningMethod string

const (
	SignWithCapSpace    SigningMethod = "cap_space"
	SignWithException   SigningMethod = "exception"
	SignIntoLuxuryTax   SigningMethod = "luxury_tax"
	SignIntoFirstApron  SigningMethod = "first_apron"
	SignIntoSecondApron SigningMethod = "second_apron"
)

// Affordability reports the cap consequences of a signing. CanSign is always
// true: this computes tax implications, hard gating is the caller's call.
type Affordability struct {
	CanSign         bool          `json:"canSign"`
	Method          SigningMethod `json:"method"`
	CombinedPayroll int64         `json:"combinedPayroll"`
	TaxBill         int64         `json:"taxBill"`
}

// ClassifySigning places the post-signing payroll against the cap, tax line,
// and aprons.
func ClassifySigning(payroll, salary int64) Affordability {
	combined := payroll + salary
	method := SignIntoSecondApron
	switch {
	case combined <= SalaryCap:
		method = SignWithCapSpace
	case combined <= LuxuryTaxLine:
		method = SignWithException
	case combined <= FirstApron:
		method = SignIntoLuxuryTax
	case combined <= SecondApron:
		method = SignIntoFirstApron
	}
	return Affordability{
		CanSign:         true,
		Method:          method,
		CombinedPayroll: combined,
		TaxBill:         LuxuryTax(combined),
	}
}

func roundToUnit(v int64) int64 {
	half := roundingUnit / 2
	return (v + half) / roundingUnit * roundingUnit
}

package fees

import (
	"math"
	"sort"
)

// Bracket maps a contiguous amount range to a fee percentage. Bound
// inclusivity is explicit so schedules can express both "up to and
// including 2000" and "strictly above 2000" without epsilon offsets.
type Bracket struct {
	Low     float64
	High    float64
	IncLow  bool
	IncHigh bool
	Percent float64
}

func (b Bracket) contains(amount float64) bool {
	if amount < b.Low || (amount == b.Low && !b.IncLow) {
		return false
	}
	if amount > b.High || (amount == b.High && !b.IncHigh) {
		return false
	}
	return true
}

// Quote is the result of a single fee evaluation. Amounts carry full
// precision; callers round at the point of external exposure.
type Quote struct {
	FeeAmount   float64
	TotalAmount float64
	FeePercent  float64
}

// Schedule holds the per-mode bracket tables. Immutable after
// construction and safe for concurrent use.
type Schedule struct {
	brackets map[string][]Bracket
	fallback string
}

const (
	ModeDebitCard  = "debit_card"
	ModeCreditCard = "credit_card"
	ModeNetbanking = "netbanking"
	ModeUPI        = "upi"
)

// DefaultSchedule returns the production fee tables. For each mode the
// brackets partition [0, inf) in ascending order with no gaps or
// overlaps; the first matching bracket wins.
func DefaultSchedule() *Schedule {
	inf := math.Inf(1)
	return &Schedule{
		fallback: ModeUPI,
		brackets: map[string][]Bracket{
			ModeDebitCard: {
				{Low: 0, High: 2000, IncLow: true, IncHigh: true, Percent: 0.0},
				{Low: 2000, High: inf, IncLow: false, IncHigh: true, Percent: 0.5},
			},
			ModeCreditCard: {
				{Low: 0, High: 25000, IncLow: true, IncHigh: true, Percent: 0.1},
				{Low: 25000, High: inf, IncLow: false, IncHigh: true, Percent: 0.5},
			},
			ModeNetbanking: {
				{Low: 0, High: 10000, IncLow: true, IncHigh: true, Percent: 0.0},
				{Low: 10000, High: 50000, IncLow: false, IncHigh: true, Percent: 0.75},
				{Low: 50000, High: inf, IncLow: false, IncHigh: true, Percent: 1.0},
			},
			ModeUPI: {
				{Low: 0, High: inf, IncLow: true, IncHigh: true, Percent: 0.0},
			},
		},
	}
}

// Compute evaluates the fee for amount under mode. Unknown modes fall
// back to the upi table (flat 0%), which is deliberate: an
// unrecognized mode quotes as free rather than failing.
func (s *Schedule) Compute(amount float64, mode string) Quote {
	table, ok := s.brackets[mode]
	if !ok {
		table = s.brackets[s.fallback]
	}

	pct := 0.0
	for _, b := range table {
		if b.contains(amount) {
			pct = b.Percent
			break
		}
	}

	fee := amount * pct / 100
	return Quote{
		FeeAmount:   fee,
		TotalAmount: amount + fee,
		FeePercent:  pct,
	}
}

// Modes returns the mode identifiers the schedule defines a table
// for, sorted.
func (s *Schedule) Modes() []string {
	modes := make([]string, 0, len(s.brackets))
	for m := range s.brackets {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	return modes
}

// Round2 rounds a monetary amount to 2 fractional digits, half away
// from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Package timecost converts a purchase price into the work time needed to
// earn it at a given hourly wage, before and after tax.
package timecost

import (
	"math"
	"strconv"
	"strings"
)

// MaxHours bounds the hour counts Compute accepts; anything at or above it is
// an invalid number. Past this a float64 no longer resolves minutes, so the
// breakdown would not add back up to the total.
const MaxHours = 1e12

// Input holds the raw text a user typed. IsNeed is tri-state: nil means the
// user did not say whether the purchase is a need or a want.
type Input struct {
	Price      string
	HourlyRate string
	TaxRate    string
	IsNeed     *bool
}

// Breakdown is the success half of a Result.
type Breakdown struct {
	Price      float64
	HourlyRate float64
	TaxRate    float64
	IsNeed     *bool

	PreTaxHours   float64 // exact, not rounded
	AfterTaxHours float64

	PreTax   Duration
	AfterTax Duration
}

// PreTaxHoursDecimal is the pre-tax hour count rounded to one decimal.
func (b *Breakdown) PreTaxHoursDecimal() float64 { return RoundTenth(b.PreTaxHours) }

// AfterTaxHoursDecimal is the after-tax hour count rounded to one decimal.
func (b *Breakdown) AfterTaxHoursDecimal() float64 { return RoundTenth(b.AfterTaxHours) }

// Result is either a Success or a Failure, never both.
type Result struct {
	Success *Breakdown
	Failure *Failure
}

// OK reports whether the calculation succeeded.
func (r Result) OK() bool { return r.Success != nil }

// Calculate parses in and converts it to work time. It never panics and
// never returns an error; invalid input yields a Result with Failure set.
func Calculate(in Input) Result {
	price, ok := parseNumber(in.Price)
	if !ok || price < 0 {
		return Result{Failure: invalidNumber()}
	}

	rate, ok := parseNumber(in.HourlyRate)
	if !ok {
		return Result{Failure: invalidNumber()}
	}

	// Blank or garbled tax means no tax.
	tax, ok := parseNumber(in.TaxRate)
	if !ok {
		tax = 0
	}

	return Compute(price, rate, tax, in.IsNeed)
}

// Compute is Calculate for already-parsed numbers.
func Compute(price, hourlyRate, taxRate float64, isNeed *bool) Result {
	if !finite(price) || price < 0 || !finite(hourlyRate) || hourlyRate <= 0 {
		return Result{Failure: invalidNumber()}
	}
	if !finite(taxRate) || taxRate < 0 || taxRate > 100 {
		return Result{Failure: taxRateOutOfRange()}
	}

	effective := hourlyRate * (1 - taxRate/100)
	if effective <= 0 {
		return Result{Failure: zeroEffectiveRate()}
	}

	preTax := price / hourlyRate
	afterTax := price / effective
	if !finite(preTax) || !finite(afterTax) || preTax >= MaxHours || afterTax >= MaxHours {
		return Result{Failure: invalidNumber()}
	}

	return Result{Success: &Breakdown{
		Price:         price,
		HourlyRate:    hourlyRate,
		TaxRate:       taxRate,
		IsNeed:        copyBool(isNeed),
		PreTaxHours:   preTax,
		AfterTaxHours: afterTax,
		PreTax:        FromHours(preTax),
		AfterTax:      FromHours(afterTax),
	}}
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) {
		return 0, false
	}
	return v, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

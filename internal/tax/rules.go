// Package tax computes Personal Income Tax and Capital Gains Tax liabilities
// from a table of rules. The rules are reference data: they are validated once,
// copied into a Calculator, and never mutated afterwards.
package tax

import (
	"fmt"

	"ngtax/tax-engine/internal/taxerror"

	"github.com/shopspring/decimal"
)

// Band is one slice of the progressive table. A zero Width marks the final,
// unbounded band.
type Band struct {
	Width decimal.Decimal `yaml:"width" json:"width"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the band has no upper limit.
func (b Band) Unbounded() bool {
	return b.Width.IsZero()
}

// ReliefRules parameterise the Consolidated Relief Allowance:
// max(Floor, FloorRate*gross) + GrossRate*gross.
type ReliefRules struct {
	Floor     decimal.Decimal `yaml:"floor" json:"floor"`
	FloorRate decimal.Decimal `yaml:"floor_rate" json:"floor_rate"`
	GrossRate decimal.Decimal `yaml:"gross_rate" json:"gross_rate"`
}

// PITRules hold the Personal Income Tax parameters.
type PITRules struct {
	Relief ReliefRules `yaml:"relief" json:"relief"`
	Bands  []Band      `yaml:"bands" json:"bands"`
}

// CGTRules hold the Capital Gains Tax parameters for companies.
// Companies with turnover at or below SmallCompanyTurnover are exempt.
type CGTRules struct {
	SmallCompanyTurnover decimal.Decimal `yaml:"small_company_turnover" json:"small_company_turnover"`
	CompanyRate          decimal.Decimal `yaml:"company_rate" json:"company_rate"`
}

// Rules is the complete rule table used by a Calculator.
type Rules struct {
	PIT PITRules `yaml:"pit" json:"pit"`
	CGT CGTRules `yaml:"cgt" json:"cgt"`
}

// DefaultRules returns the compiled-in rule table (PITA sixth schedule bands,
// 200,000 relief floor, 100m small company threshold, 30% company rate).
func DefaultRules() Rules {
	d := decimal.RequireFromString
	return Rules{
		PIT: PITRules{
			Relief: ReliefRules{
				Floor:     d("200000"),
				FloorRate: d("0.01"),
				GrossRate: d("0.20"),
			},
			Bands: []Band{
				{Width: d("300000"), Rate: d("0.07")},
				{Width: d("300000"), Rate: d("0.11")},
				{Width: d("500000"), Rate: d("0.15")},
				{Width: d("500000"), Rate: d("0.19")},
				{Width: d("1600000"), Rate: d("0.21")},
				{Rate: d("0.24")},
			},
		},
		CGT: CGTRules{
			SmallCompanyTurnover: d("100000000"),
			CompanyRate:          d("0.30"),
		},
	}
}

// Clone returns a deep copy of r.
func (r Rules) Clone() Rules {
	out := r
	out.PIT.Bands = make([]Band, len(r.PIT.Bands))
	copy(out.PIT.Bands, r.PIT.Bands)
	return out
}

// Validate checks that the table can be walked: at least one band, rates in
// [0,1], positive widths, and exactly one unbounded band in last position.
func (r Rules) Validate() error {
	bands := r.PIT.Bands
	if len(bands) == 0 {
		return &taxerror.RulesError{Reason: "progressive table has no bands"}
	}

	for i, b := range bands {
		if !isRate(b.Rate) {
			return &taxerror.RulesError{Reason: fmt.Sprintf("band %d rate %s outside [0,1]", i+1, b.Rate)}
		}
		if b.Width.IsNegative() {
			return &taxerror.RulesError{Reason: fmt.Sprintf("band %d has negative width %s", i+1, b.Width)}
		}
		last := i == len(bands)-1
		if b.Unbounded() && !last {
			return &taxerror.RulesError{Reason: fmt.Sprintf("band %d is unbounded but not last", i+1)}
		}
		if !b.Unbounded() && last {
			return &taxerror.RulesError{Reason: "final band must be unbounded"}
		}
	}

	relief := r.PIT.Relief
	if relief.Floor.IsNegative() {
		return &taxerror.RulesError{Reason: "relief floor is negative"}
	}
	if !isRate(relief.FloorRate) || !isRate(relief.GrossRate) {
		return &taxerror.RulesError{Reason: "relief rates must be within [0,1]"}
	}

	if r.CGT.SmallCompanyTurnover.IsNegative() {
		return &taxerror.RulesError{Reason: "small company turnover threshold is negative"}
	}
	if !isRate(r.CGT.CompanyRate) {
		return &taxerror.RulesError{Reason: "company CGT rate must be within [0,1]"}
	}

	return nil
}

func isRate(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}

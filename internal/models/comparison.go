package models

import "github.com/shopspring/decimal"

// MetricComparison compares one metric across two fiscal periods.
// PercentChange is zero when the previous period is not positive.
type MetricComparison struct {
	ThisYear      decimal.Decimal `json:"this_year" yaml:"this_year" xml:"ThisYear"`
	LastYear      decimal.Decimal `json:"last_year" yaml:"last_year" xml:"LastYear"`
	PercentChange decimal.Decimal `json:"percent_change" yaml:"percent_change" xml:"PercentChange"`
}

// Direction returns "up", "down" or "flat" based on PercentChange.
func (m MetricComparison) Direction() string {
	switch m.PercentChange.Sign() {
	case 1:
		return "up"
	case -1:
		return "down"
	default:
		return "flat"
	}
}

// YearComparison is the year-over-year view of expenses and turnover.
type YearComparison struct {
	Expenses MetricComparison `json:"expenses" yaml:"expenses" xml:"Expenses"`
	Turnover MetricComparison `json:"turnover" yaml:"turnover" xml:"Turnover"`
}

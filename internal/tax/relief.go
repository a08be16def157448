package tax

import "github.com/shopspring/decimal"

// ConsolidatedRelief returns the Consolidated Relief Allowance for gross income:
// max(Floor, FloorRate*gross) + GrossRate*gross. The floor always applies, so a
// zero income still earns the full floor amount.
func (r ReliefRules) ConsolidatedRelief(gross decimal.Decimal) decimal.Decimal {
	base := decimal.Max(r.Floor, r.FloorRate.Mul(gross))
	return base.Add(r.GrossRate.Mul(gross))
}

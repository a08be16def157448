package tax

import (
	"fmt"

	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/models"

	"github.com/shopspring/decimal"
)

// Labels reported in CgtResult.RateDescription.
const (
	LabelSmallCompanyExempt = "Small Company Exempt"
	LabelProgressive        = "Progressive (Same as PIT)"
	LabelUnknownEntity      = "Unknown Entity Type"
)

var hundred = decimal.NewFromInt(100)

// Calculator computes tax liabilities from an immutable copy of Rules.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	rules  Rules
	logger logging.Logger
}

// NewCalculator validates rules and returns a Calculator that owns a copy of them.
func NewCalculator(rules Rules, logger logging.Logger) (*Calculator, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{
		rules:  rules.Clone(),
		logger: logging.OrDefault(logger),
	}, nil
}

// NewDefaultCalculator returns a Calculator over DefaultRules.
func NewDefaultCalculator(logger logging.Logger) *Calculator {
	c, err := NewCalculator(DefaultRules(), logger)
	if err != nil {
		panic(fmt.Sprintf("default tax rules are invalid: %v", err))
	}
	return c
}

// Rules returns a copy of the calculator's rule table.
func (c *Calculator) Rules() Rules {
	return c.rules.Clone()
}

// ComputePIT computes Personal Income Tax for input.
//
// Taxable income is gross income less allowable deductions, non-taxable income
// and the Consolidated Relief Allowance, clamped at zero. ActualRentPaid does
// not enter the computation. Tax is the marginal walk over the band table.
func (c *Calculator) ComputePIT(input models.TaxInput) models.TaxResult {
	gross := input.GrossIncome
	relief := c.rules.PIT.Relief.ConsolidatedRelief(gross)

	taxable := gross.
		Sub(input.AllowableDeductions).
		Sub(input.NonTaxableIncome).
		Sub(relief)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	bands, payable := walkBands(taxable, c.rules.PIT.Bands)

	effective := decimal.Zero
	if gross.IsPositive() {
		effective = payable.Div(gross).Mul(hundred).Round(moneyPlaces)
	}

	return models.TaxResult{
		GrossIncome:        gross,
		ConsolidatedRelief: relief,
		TaxableIncome:      taxable,
		TaxPayable:         payable,
		EffectiveRate:      effective,
		BandsApplied:       bands,
	}
}

// ComputeCGT computes Capital Gains Tax for input.
//
// Companies at or below the small company turnover threshold are exempt; larger
// companies pay the flat company rate on the gain. Individuals are taxed on the
// progressive bands with the gain as the sole gross income. A gain of zero or
// less never produces tax.
func (c *Calculator) ComputeCGT(input models.CgtInput) models.CgtResult {
	result := models.CgtResult{
		EntityType: input.EntityType,
		GainAmount: input.GainAmount,
		TaxPayable: decimal.Zero,
	}

	switch input.EntityType {
	case models.EntityCompany:
		if input.Turnover.LessThanOrEqual(c.rules.CGT.SmallCompanyTurnover) {
			result.RateDescription = LabelSmallCompanyExempt
			break
		}
		result.RateDescription = flatLabel(c.rules.CGT.CompanyRate)
		if input.GainAmount.IsPositive() {
			result.TaxPayable = input.GainAmount.Mul(c.rules.CGT.CompanyRate).Round(moneyPlaces)
		}

	case models.EntityIndividual:
		pit := c.ComputePIT(models.TaxInput{GrossIncome: input.GainAmount})
		result.TaxPayable = pit.TaxPayable
		result.RateDescription = LabelProgressive
		result.Breakdown = &pit

	default:
		result.RateDescription = LabelUnknownEntity
		c.logger.Warn("Capital gains requested for unknown entity type; no tax computed",
			logging.Field{Key: logging.FieldEntityType, Value: string(input.EntityType)})
		return result
	}

	c.logger.Debug("Capital gains rule applied",
		logging.Field{Key: logging.FieldEntityType, Value: string(input.EntityType)},
		logging.Field{Key: logging.FieldRule, Value: result.RateDescription})

	return result
}

// flatLabel renders a rate such as 0.30 as "30% Flat".
func flatLabel(rate decimal.Decimal) string {
	return fmt.Sprintf("%s%% Flat", rate.Mul(hundred).String())
}

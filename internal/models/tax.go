package models

import "github.com/shopspring/decimal"

// TaxInput holds the raw figures for a Personal Income Tax calculation.
// All amounts are in naira and expected to be non-negative; zero values are
// the defaults for every field except GrossIncome.
type TaxInput struct {
	GrossIncome         decimal.Decimal `json:"gross_income" yaml:"gross_income" xml:"GrossIncome"`
	AllowableDeductions decimal.Decimal `json:"allowable_deductions" yaml:"allowable_deductions" xml:"AllowableDeductions"`
	NonTaxableIncome    decimal.Decimal `json:"non_taxable_income" yaml:"non_taxable_income" xml:"NonTaxableIncome"`
	// ActualRentPaid is accepted but does not reduce taxable income.
	ActualRentPaid decimal.Decimal `json:"actual_rent_paid" yaml:"actual_rent_paid" xml:"ActualRentPaid"`
}

// BandApplication records how much of the taxable income fell into one band
// and the tax charged on that slice.
type BandApplication struct {
	Rate         decimal.Decimal `json:"rate" yaml:"rate" xml:"Rate"`
	AmountInBand decimal.Decimal `json:"amount_in_band" yaml:"amount_in_band" xml:"AmountInBand"`
	TaxInBand    decimal.Decimal `json:"tax_in_band" yaml:"tax_in_band" xml:"TaxInBand"`
}

// TaxResult is the outcome of a Personal Income Tax calculation.
type TaxResult struct {
	GrossIncome        decimal.Decimal   `json:"gross_income" yaml:"gross_income" xml:"GrossIncome"`
	ConsolidatedRelief decimal.Decimal   `json:"consolidated_relief" yaml:"consolidated_relief" xml:"ConsolidatedRelief"`
	TaxableIncome      decimal.Decimal   `json:"taxable_income" yaml:"taxable_income" xml:"TaxableIncome"`
	TaxPayable         decimal.Decimal   `json:"tax_payable" yaml:"tax_payable" xml:"TaxPayable"`
	EffectiveRate      decimal.Decimal   `json:"effective_rate" yaml:"effective_rate" xml:"EffectiveRate"`
	BandsApplied       []BandApplication `json:"bands_applied" yaml:"bands_applied" xml:"BandsApplied>Band"`
}

// NetIncome returns gross income less tax payable.
func (r TaxResult) NetIncome() decimal.Decimal {
	return r.GrossIncome.Sub(r.TaxPayable)
}

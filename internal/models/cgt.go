package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// EntityType distinguishes the taxpayer kinds the Capital Gains Tax rules branch on.
type EntityType string

const (
	EntityIndividual EntityType = "individual"
	EntityCompany    EntityType = "company"
)

// ParseEntityType converts user input into an EntityType.
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(strings.ToLower(strings.TrimSpace(s))) {
	case EntityIndividual:
		return EntityIndividual, nil
	case EntityCompany:
		return EntityCompany, nil
	default:
		return "", fmt.Errorf("unknown entity type %q (expected %q or %q)", s, EntityIndividual, EntityCompany)
	}
}

// IsValid reports whether e is one of the known entity types.
func (e EntityType) IsValid() bool {
	return e == EntityIndividual || e == EntityCompany
}

// CgtInput holds the figures for a Capital Gains Tax calculation.
// Turnover is only consulted for companies.
type CgtInput struct {
	EntityType EntityType      `json:"entity_type" yaml:"entity_type" xml:"EntityType"`
	GainAmount decimal.Decimal `json:"gain_amount" yaml:"gain_amount" xml:"GainAmount"`
	Turnover   decimal.Decimal `json:"turnover" yaml:"turnover" xml:"Turnover"`
}

// CgtResult is the outcome of a Capital Gains Tax calculation. RateDescription
// names the rule that fired. Breakdown is set only when the gain was taxed on
// the progressive bands.
type CgtResult struct {
	EntityType      EntityType      `json:"entity_type" yaml:"entity_type" xml:"EntityType"`
	GainAmount      decimal.Decimal `json:"gain_amount" yaml:"gain_amount" xml:"GainAmount"`
	TaxPayable      decimal.Decimal `json:"tax_payable" yaml:"tax_payable" xml:"TaxPayable"`
	RateDescription string          `json:"rate_description" yaml:"rate_description" xml:"RateDescription"`
	Breakdown       *TaxResult      `json:"breakdown,omitempty" yaml:"breakdown,omitempty" xml:"Breakdown,omitempty"`
}

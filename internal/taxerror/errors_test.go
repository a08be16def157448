package taxerror

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidAmountError(t *testing.T) {
	err := &InvalidAmountError{Field: "gross_income", Value: "-10"}
	assert.Equal(t, "invalid amount for gross_income='-10': amount must not be negative", err.Error())
	assert.True(t, errors.Is(err, ErrNegativeAmount))

	var target *InvalidAmountError
	assert.True(t, errors.As(error(err), &target))
	assert.Equal(t, "gross_income", target.Field)
}

func TestUnknownNameError(t *testing.T) {
	err := &UnknownNameError{Kind: "section", Name: "payroll"}
	assert.Equal(t, `unknown section "payroll"`, err.Error())
}

func TestRulesError(t *testing.T) {
	err := &RulesError{Reason: "no bands"}
	assert.Equal(t, "invalid tax rules: no bands", err.Error())
}

func TestReferenceDataError(t *testing.T) {
	err := &ReferenceDataError{FilePath: "tax_rules.yaml", Err: os.ErrPermission}
	assert.Contains(t, err.Error(), "tax_rules.yaml")
	assert.True(t, errors.Is(err, os.ErrPermission))
}

package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityType(t *testing.T) {
	tests := []struct {
		input   string
		want    EntityType
		wantErr bool
	}{
		{input: "individual", want: EntityIndividual},
		{input: " Company ", want: EntityCompany},
		{input: "INDIVIDUAL", want: EntityIndividual},
		{input: "partnership", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEntityType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, got.IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestMetricComparison_Direction(t *testing.T) {
	assert.Equal(t, "up", MetricComparison{PercentChange: decimal.NewFromInt(20)}.Direction())
	assert.Equal(t, "down", MetricComparison{PercentChange: decimal.NewFromInt(-5)}.Direction())
	assert.Equal(t, "flat", MetricComparison{}.Direction())
}

func TestTaxResult_NetIncome(t *testing.T) {
	r := TaxResult{GrossIncome: decimal.NewFromInt(1_000_000), TaxPayable: decimal.NewFromInt(54_000)}
	assert.True(t, decimal.NewFromInt(946_000).Equal(r.NetIncome()))
}

func TestClassificationStats(t *testing.T) {
	stats := NewClassificationStats()
	stats.Record(ClassifiedTransaction{Category: CategoryTelecoms, Matched: true})
	stats.Record(ClassifiedTransaction{Category: CategoryTelecoms, Matched: true})
	stats.Record(ClassifiedTransaction{Category: CategoryRent, Matched: true})
	stats.Record(ClassifiedTransaction{Category: CategoryUncategorized})

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Classified)
	assert.Equal(t, 1, stats.Unclassified)
	assert.Equal(t, 2, stats.PerCategory[CategoryTelecoms])
	assert.InDelta(t, 75.0, stats.SuccessRate(), 0.001)
	assert.Equal(t, []string{CategoryRent, CategoryTelecoms}, stats.Categories())

	assert.Equal(t, 0.0, ClassificationStats{}.SuccessRate())
}

func TestClassifiedTransaction_NeedsReview(t *testing.T) {
	assert.True(t, ClassifiedTransaction{Category: CategoryUncategorized}.NeedsReview())
	assert.False(t, ClassifiedTransaction{Category: CategoryRent, Matched: true}.NeedsReview())
}

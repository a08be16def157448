package categorizer

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizer_Classify(t *testing.T) {
	c := NewCategorizer(nil, &logging.MockLogger{})

	tests := []struct {
		name          string
		description   string
		expectedFound bool
		expectedName  string
	}{
		{"telecoms", "Payment to MTN for data bundle", true, models.CategoryTelecoms},
		{"utilities", "IKEDC prepaid token", true, models.CategoryUtilities},
		{"transport", "Uber trip to Ikeja", true, models.CategoryTransport},
		{"bank charges before repairs", "Account maintenance fee", true, models.CategoryBankCharges},
		{"repairs", "Generator repair", true, models.CategoryRepairs},
		{"case insensitive", "SALARY PAYMENT JUNE", true, models.CategorySalaries},
		{"stamp duty", "Stamp duty on transfer", true, models.CategoryBankCharges},
		{"declaration order wins over position", "MTN data reimbursement via payroll", true, models.CategorySalaries},
		{"substring semantics", "Current account interest", true, models.CategoryRent},
		{"no match", "Mystery transfer XYZ", false, models.CategoryUncategorized},
		{"empty description", "", false, models.CategoryUncategorized},
		{"whitespace description", "   ", false, models.CategoryUncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, found := c.Classify(tt.description)
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedName, category.Name)
		})
	}
}

func TestCategorizer_ClassifyIsDeterministic(t *testing.T) {
	c := NewCategorizer(nil, nil)

	first, _ := c.Classify("Office rent for Q3")
	for i := 0; i < 20; i++ {
		again, _ := c.Classify("Office rent for Q3")
		assert.Equal(t, first, again)
	}
}

func TestCategorizer_ConcurrentUse(t *testing.T) {
	c := NewCategorizer(nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			category, found := c.Classify("Uber trip to Ikeja")
			assert.True(t, found)
			assert.Equal(t, models.CategoryTransport, category.Name)
		}()
	}
	wg.Wait()
}

func TestCategorizer_ClassifyTransaction(t *testing.T) {
	c := NewCategorizer(nil, nil)

	ct := c.ClassifyTransaction(models.Transaction{
		Date:        "2024-03-01",
		Description: "Account maintenance fee",
		Amount:      "52.50",
	})

	assert.Equal(t, "2024-03-01", ct.Date)
	assert.Equal(t, "52.50", ct.Amount)
	assert.Equal(t, models.CategoryBankCharges, ct.Category)
	assert.Equal(t, "maintenance fee", ct.Keyword)
	assert.True(t, ct.Matched)
	assert.False(t, ct.NeedsReview())
}

func TestCategorizer_ClassifyAll(t *testing.T) {
	logger := logging.NewMockLogger()
	c := NewCategorizer(nil, logger)

	txs := []models.Transaction{
		{Description: "Payment to MTN for data bundle", Amount: "5000"},
		{Description: "Mystery transfer XYZ", Amount: "12000"},
		{Description: "Airtel airtime", Amount: "1000"},
		{Description: "Uber trip to Ikeja", Amount: "3500"},
	}

	classified, stats := c.ClassifyAll(txs)
	require.Len(t, classified, len(txs))

	for i, ct := range classified {
		assert.Equal(t, txs[i].Description, ct.Description, "order must be preserved")
	}
	assert.True(t, classified[1].NeedsReview())

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Classified)
	assert.Equal(t, 1, stats.Unclassified)
	assert.Equal(t, 2, stats.PerCategory[models.CategoryTelecoms])
	assert.Equal(t, 1, stats.PerCategory[models.CategoryTransport])
	assert.InDelta(t, 75.0, stats.SuccessRate(), 0.001)

	assert.True(t, logger.HasEntry("DEBUG", "Transaction classified by keyword"))
	assert.True(t, logger.HasEntry("DEBUG", "No category rule matched"))
}

func TestCategorizer_ClassifyAllEmpty(t *testing.T) {
	c := NewCategorizer(nil, nil)

	classified, stats := c.ClassifyAll(nil)
	assert.Empty(t, classified)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.SuccessRate())
}

func TestCategorizer_CustomRules(t *testing.T) {
	rs, err := NewRuleSet([]models.CategoryConfig{
		{Name: "Fuel", Keywords: []string{"  DIESEL ", "petrol", ""}},
		{Name: "Generator", Keywords: []string{"generator", "diesel"}},
	})
	require.NoError(t, err)

	c := NewCategorizer(rs, nil)

	category, found := c.Classify("Diesel for generator")
	assert.True(t, found)
	assert.Equal(t, "Fuel", category.Name)

	category, found = c.Classify("Generator spare parts")
	assert.True(t, found)
	assert.Equal(t, "Generator", category.Name)
}

func TestNewRuleSet_Validation(t *testing.T) {
	tests := []struct {
		name    string
		configs []models.CategoryConfig
		wantErr string
	}{
		{
			name:    "empty name",
			configs: []models.CategoryConfig{{Name: "  ", Keywords: []string{"x"}}},
			wantErr: "category 1 has no name",
		},
		{
			name: "duplicate name",
			configs: []models.CategoryConfig{
				{Name: "Rent", Keywords: []string{"rent"}},
				{Name: "Rent", Keywords: []string{"lease"}},
			},
			wantErr: `duplicate category "Rent"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRuleSet(tt.configs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRuleSet_NamesAndConfigs(t *testing.T) {
	rs := DefaultRuleSet()

	names := rs.Names()
	require.Len(t, names, 19)
	assert.Equal(t, models.CategorySalaries, names[0])
	assert.Equal(t, models.CategorySales, names[len(names)-1])
	assert.Equal(t, rs.Len(), len(names))
	assert.True(t, rs.Contains(models.CategoryMedical))
	assert.False(t, rs.Contains(models.CategoryUncategorized))

	configs := rs.Configs()
	configs[0].Keywords[0] = "mutated"
	assert.Equal(t, "salary", rs.Configs()[0].Keywords[0], "Configs must return a copy")
}

func TestDefaultCategories_KeywordsAreLowercase(t *testing.T) {
	for _, cfg := range DefaultCategories() {
		assert.NotEmpty(t, cfg.Keywords, cfg.Name)
		for _, kw := range cfg.Keywords {
			assert.Equal(t, kw, strings.ToLower(strings.TrimSpace(kw)), "%s keyword %q", cfg.Name, kw)
		}
	}
}

type fakeSource struct {
	configs []models.CategoryConfig
	err     error
}

func (f fakeSource) LoadCategories() ([]models.CategoryConfig, error) {
	return f.configs, f.err
}

func TestLoadRuleSet(t *testing.T) {
	t.Run("empty source uses defaults", func(t *testing.T) {
		logger := logging.NewMockLogger()
		rs, err := LoadRuleSet(fakeSource{}, logger)
		require.NoError(t, err)
		assert.Equal(t, 19, rs.Len())
		assert.True(t, logger.HasEntry("INFO", "No category rules configured, using built-in categories"))
	})

	t.Run("configured rules", func(t *testing.T) {
		rs, err := LoadRuleSet(fakeSource{configs: []models.CategoryConfig{
			{Name: "Fuel", Keywords: []string{"diesel"}},
		}}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Fuel"}, rs.Names())
	})

	t.Run("source error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := LoadRuleSet(fakeSource{err: boom}, nil)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("invalid rules", func(t *testing.T) {
		_, err := LoadRuleSet(fakeSource{configs: []models.CategoryConfig{{Name: ""}}}, nil)
		assert.Error(t, err)
	})
}

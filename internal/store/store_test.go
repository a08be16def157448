package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/models"
	"ngtax/tax-engine/internal/tax"
	"ngtax/tax-engine/internal/taxerror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func newTestStore(dir string) *ReferenceStore {
	return NewReferenceStore(
		filepath.Join(dir, DefaultCategoriesFile),
		filepath.Join(dir, DefaultTaxRulesFile),
		"",
		&logging.MockLogger{},
	)
}

func TestNewReferenceStore_Defaults(t *testing.T) {
	s := NewReferenceStore("", "", "data", nil)
	assert.Equal(t, DefaultCategoriesFile, s.CategoriesFile)
	assert.Equal(t, DefaultTaxRulesFile, s.TaxRulesFile)
	assert.Equal(t, "data", s.DataDir)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "test.yaml")
	writeFile(t, testFile, "test content")

	s := NewReferenceStore("", "", dir, nil)

	file, err := s.FindConfigFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testFile, file)

	file, err = s.FindConfigFile("test.yaml")
	require.NoError(t, err)
	assert.Equal(t, testFile, file, "relative names are resolved against the data directory first")

	_, err = s.FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestLoadCategories(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name: "categories key",
			content: `categories:
  - name: Fuel
    keywords: ["diesel", "petrol"]
  - name: Generator
    description: Generator upkeep
    keywords: ["generator"]
`,
			expected: []string{"Fuel", "Generator"},
		},
		{
			name: "bare list keeps order",
			content: `- name: Zebra
  keywords: ["z"]
- name: Alpha
  keywords: ["a"]
`,
			expected: []string{"Zebra", "Alpha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, DefaultCategoriesFile), tt.content)

			categories, err := newTestStore(dir).LoadCategories()
			require.NoError(t, err)

			var names []string
			for _, c := range categories {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestLoadCategories_MissingFile(t *testing.T) {
	categories, err := newTestStore(t.TempDir()).LoadCategories()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestLoadCategories_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, DefaultCategoriesFile), "categories: [unterminated")

	_, err := newTestStore(dir).LoadCategories()
	var refErr *taxerror.ReferenceDataError
	require.True(t, errors.As(err, &refErr))
	assert.Contains(t, refErr.FilePath, DefaultCategoriesFile)
}

func TestLoadTaxRules_MissingFileUsesDefaults(t *testing.T) {
	rules, err := newTestStore(t.TempDir()).LoadTaxRules()
	require.NoError(t, err)
	assert.Len(t, rules.PIT.Bands, 6)
	assert.True(t, rules.CGT.CompanyRate.Equal(decimal.RequireFromString("0.30")))
}

func TestLoadTaxRules_Override(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, DefaultTaxRulesFile), `pit:
  bands:
    - width: 1000000
      rate: 0.10
    - width: 0
      rate: 0.20
cgt:
  company_rate: 0.25
`)

	rules, err := newTestStore(dir).LoadTaxRules()
	require.NoError(t, err)

	require.Len(t, rules.PIT.Bands, 2)
	assert.True(t, rules.PIT.Bands[0].Width.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, rules.PIT.Bands[1].Unbounded())
	assert.True(t, rules.CGT.CompanyRate.Equal(decimal.RequireFromString("0.25")))
	assert.True(t, rules.CGT.SmallCompanyTurnover.Equal(decimal.NewFromInt(100000000)), "unset fields keep defaults")
	assert.True(t, rules.PIT.Relief.Floor.Equal(decimal.NewFromInt(200000)))
}

func TestLoadTaxRules_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, DefaultTaxRulesFile), `pit:
  bands:
    - width: 0
      rate: 0.10
    - width: 500
      rate: 0.20
`)

	_, err := newTestStore(dir).LoadTaxRules()
	require.Error(t, err)

	var rulesErr *taxerror.RulesError
	assert.True(t, errors.As(err, &rulesErr))
	assert.Contains(t, err.Error(), "unbounded but not last")
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	s := newTestStore(filepath.Join(dir, "nested"))

	categories := []models.CategoryConfig{
		{Name: "Fuel", Description: "Diesel and petrol", Keywords: []string{"diesel"}},
	}
	require.NoError(t, s.SaveCategories(s.CategoriesFile, categories))
	require.NoError(t, s.SaveTaxRules(s.TaxRulesFile, tax.DefaultRules()))

	loaded, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, categories, loaded)

	rules, err := s.LoadTaxRules()
	require.NoError(t, err)
	require.Len(t, rules.PIT.Bands, 6)
	for i, band := range tax.DefaultRules().PIT.Bands {
		assert.True(t, band.Width.Equal(rules.PIT.Bands[i].Width))
		assert.True(t, band.Rate.Equal(rules.PIT.Bands[i].Rate))
	}
}

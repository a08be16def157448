// Package store loads and saves the engine's YAML reference data: the ordered
// category rules and the tax rule table. Missing files are not errors; callers
// fall back to the compiled-in defaults.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"ngtax/tax-engine/internal/fileutils"
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/models"
	"ngtax/tax-engine/internal/tax"
	"ngtax/tax-engine/internal/taxerror"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCategoriesFile = "categories.yaml"
	DefaultTaxRulesFile   = "tax_rules.yaml"
)

// ReferenceStore manages loading and saving of reference data files.
type ReferenceStore struct {
	CategoriesFile string
	TaxRulesFile   string
	// DataDir is searched before the standard locations for relative file names.
	DataDir string
	logger  logging.Logger
}

// NewReferenceStore creates a store for the given files. Empty names use the defaults.
func NewReferenceStore(categoriesFile, taxRulesFile, dataDir string, logger logging.Logger) *ReferenceStore {
	if categoriesFile == "" {
		categoriesFile = DefaultCategoriesFile
	}
	if taxRulesFile == "" {
		taxRulesFile = DefaultTaxRulesFile
	}
	return &ReferenceStore{
		CategoriesFile: categoriesFile,
		TaxRulesFile:   taxRulesFile,
		DataDir:        dataDir,
		logger:         logging.OrDefault(logger),
	}
}

// FindConfigFile looks for a reference file in standard locations:
// the data directory, the working directory, ./config and $HOME/.ngtax.
func (s *ReferenceStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if !fileutils.FileExists(filename) {
			return "", os.ErrNotExist
		}
		return filename, nil
	}

	var locations []string
	if s.DataDir != "" {
		locations = append(locations, filepath.Join(s.DataDir, filename))
	}
	locations = append(locations, filename, filepath.Join("config", filename))
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".ngtax", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the ordered category rules. The file may either carry a
// top-level "categories" key or be a bare list. A missing file yields an empty
// slice and no error.
func (s *ReferenceStore) LoadCategories() ([]models.CategoryConfig, error) {
	data, filePath, err := s.read(s.CategoriesFile)
	if err != nil || data == nil {
		return []models.CategoryConfig{}, err
	}

	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err == nil && len(categoriesConfig.Categories) > 0 {
		s.logger.Debug("Loaded categories",
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(categoriesConfig.Categories)})
		return categoriesConfig.Categories, nil
	}

	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, &taxerror.ReferenceDataError{
			FilePath: filePath,
			Err:      fmt.Errorf("error parsing categories: %w", err),
		}
	}

	s.logger.Debug("Loaded categories from bare list",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(categories)})
	return categories, nil
}

// LoadTaxRules loads and validates the tax rule table. A missing file yields
// tax.DefaultRules. Fields absent from the file keep their default values.
func (s *ReferenceStore) LoadTaxRules() (tax.Rules, error) {
	data, filePath, err := s.read(s.TaxRulesFile)
	if err != nil {
		return tax.Rules{}, err
	}
	if data == nil {
		s.logger.Debug("Using built-in tax rules")
		return tax.DefaultRules(), nil
	}

	rules := tax.DefaultRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return tax.Rules{}, &taxerror.ReferenceDataError{
			FilePath: filePath,
			Err:      fmt.Errorf("error parsing tax rules: %w", err),
		}
	}
	if err := rules.Validate(); err != nil {
		return tax.Rules{}, &taxerror.ReferenceDataError{FilePath: filePath, Err: err}
	}

	s.logger.Debug("Loaded tax rules",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rules.PIT.Bands)})
	return rules, nil
}

// SaveCategories writes categories under a top-level "categories" key.
func (s *ReferenceStore) SaveCategories(path string, categories []models.CategoryConfig) error {
	return s.write(path, models.CategoriesConfig{Categories: categories})
}

// SaveTaxRules writes the rule table.
func (s *ReferenceStore) SaveTaxRules(path string, rules tax.Rules) error {
	return s.write(path, rules)
}

// read returns the file contents, or nil data when the file does not exist.
func (s *ReferenceStore) read(filename string) ([]byte, string, error) {
	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("Reference file not found",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return nil, filename, nil
		}
		return nil, filename, &taxerror.ReferenceDataError{FilePath: filename, Err: err}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, filePath, &taxerror.ReferenceDataError{FilePath: filePath, Err: err}
	}
	return data, filePath, nil
}

func (s *ReferenceStore) write(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshaling reference data: %w", err)
	}

	if err := fileutils.WriteFile(path, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing reference data: %w", err)
	}

	s.logger.Debug("Saved reference data", logging.Field{Key: logging.FieldFile, Value: path})
	return nil
}

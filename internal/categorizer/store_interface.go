package categorizer

import (
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/models"
)

// CategorySource supplies category configurations, typically from YAML.
type CategorySource interface {
	LoadCategories() ([]models.CategoryConfig, error)
}

// LoadRuleSet builds a RuleSet from source. An empty source falls back to
// DefaultRuleSet; a load or validation error is returned to the caller.
func LoadRuleSet(source CategorySource, logger logging.Logger) (*RuleSet, error) {
	logger = logging.OrDefault(logger)

	configs, err := source.LoadCategories()
	if err != nil {
		return nil, err
	}

	if len(configs) == 0 {
		logger.Info("No category rules configured, using built-in categories")
		return DefaultRuleSet(), nil
	}

	rs, err := NewRuleSet(configs)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded category rules", logging.Field{Key: logging.FieldCount, Value: rs.Len()})
	return rs, nil
}

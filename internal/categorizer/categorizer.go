package categorizer

import (
	"strings"

	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/models"
)

// Categorizer classifies transaction descriptions against a RuleSet.
// It holds no mutable state and is safe for concurrent use.
type Categorizer struct {
	rules  *RuleSet
	logger logging.Logger
}

// NewCategorizer creates a Categorizer over rules. A nil rules uses DefaultRuleSet.
func NewCategorizer(rules *RuleSet, logger logging.Logger) *Categorizer {
	if rules == nil {
		rules = DefaultRuleSet()
	}
	return &Categorizer{
		rules:  rules,
		logger: logging.OrDefault(logger),
	}
}

// RuleSet returns the rule set the categorizer matches against.
func (c *Categorizer) RuleSet() *RuleSet {
	return c.rules
}

// Classify returns the first category whose keywords occur in description.
// The boolean is false when nothing matched; the returned category is then
// Uncategorized and the transaction needs manual review.
func (c *Categorizer) Classify(description string) (models.Category, bool) {
	category, _, ok := c.classify(description)
	return category, ok
}

func (c *Categorizer) classify(description string) (models.Category, string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(description))
	if lowered == "" {
		return uncategorized(), "", false
	}

	r, keyword, ok := c.rules.match(lowered)
	if !ok {
		c.logger.Debug("No category rule matched",
			logging.Field{Key: logging.FieldDescription, Value: description})
		return uncategorized(), "", false
	}

	c.logger.Debug("Transaction classified by keyword",
		logging.Field{Key: logging.FieldDescription, Value: description},
		logging.Field{Key: logging.FieldKeyword, Value: keyword},
		logging.Field{Key: logging.FieldCategory, Value: r.name})

	return models.Category{Name: r.name, Description: r.description}, keyword, true
}

// ClassifyTransaction classifies tx by its description.
func (c *Categorizer) ClassifyTransaction(tx models.Transaction) models.ClassifiedTransaction {
	category, keyword, ok := c.classify(tx.Description)
	return models.ClassifiedTransaction{
		Date:        tx.Date,
		Description: tx.Description,
		Amount:      tx.Amount,
		Category:    category.Name,
		Matched:     ok,
		Keyword:     keyword,
	}
}

// ClassifyAll classifies a batch, preserving order, and returns its statistics.
func (c *Categorizer) ClassifyAll(txs []models.Transaction) ([]models.ClassifiedTransaction, *models.ClassificationStats) {
	stats := models.NewClassificationStats()
	out := make([]models.ClassifiedTransaction, 0, len(txs))
	for _, tx := range txs {
		ct := c.ClassifyTransaction(tx)
		stats.Record(ct)
		out = append(out, ct)
	}
	return out, stats
}

func uncategorized() models.Category {
	return models.Category{
		Name:        models.CategoryUncategorized,
		Description: "Needs manual categorization",
	}
}

package models

import (
	"sort"

	"ngtax/tax-engine/internal/logging"
)

// ClassificationStats tracks the outcome of classifying a batch of transactions.
type ClassificationStats struct {
	Total        int            `json:"total" yaml:"total"`
	Classified   int            `json:"classified" yaml:"classified"`
	Unclassified int            `json:"unclassified" yaml:"unclassified"`
	PerCategory  map[string]int `json:"per_category" yaml:"per_category"`
}

// NewClassificationStats creates an empty ClassificationStats.
func NewClassificationStats() *ClassificationStats {
	return &ClassificationStats{PerCategory: make(map[string]int)}
}

// Record counts one classified transaction.
func (cs *ClassificationStats) Record(ct ClassifiedTransaction) {
	if cs.PerCategory == nil {
		cs.PerCategory = make(map[string]int)
	}
	cs.Total++
	if ct.Matched {
		cs.Classified++
		cs.PerCategory[ct.Category]++
		return
	}
	cs.Unclassified++
}

// SuccessRate returns the classified share as a percentage.
func (cs ClassificationStats) SuccessRate() float64 {
	if cs.Total == 0 {
		return 0.0
	}
	return float64(cs.Classified) / float64(cs.Total) * 100.0
}

// Categories returns the names of categories with at least one hit, sorted.
func (cs ClassificationStats) Categories() []string {
	names := make([]string, 0, len(cs.PerCategory))
	for name := range cs.PerCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LogSummary logs a summary of the batch.
func (cs ClassificationStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}

	logger.Info("Classification summary",
		logging.Field{Key: "total_transactions", Value: cs.Total},
		logging.Field{Key: "classified", Value: cs.Classified},
		logging.Field{Key: "unclassified", Value: cs.Unclassified},
		logging.Field{Key: "success_rate", Value: cs.SuccessRate()},
	)
}

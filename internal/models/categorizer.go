package models

// Category represents a transaction category.
type Category struct {
	Name        string
	Description string
}

// CategoryConfig is one entry of the ordered category rule set.
type CategoryConfig struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Keywords    []string `yaml:"keywords"`
}

// CategoriesConfig is the structure of the categories YAML file.
// The order of Categories is the match order.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// Transaction is a raw transaction as supplied by the persistence layer or a CSV batch.
type Transaction struct {
	Date        string `csv:"date" json:"date"`
	Description string `csv:"description" json:"description"`
	Amount      string `csv:"amount" json:"amount"`
}

// ClassifiedTransaction is a Transaction with the category assigned by the matcher.
// Matched is false when the transaction needs manual categorization.
type ClassifiedTransaction struct {
	Date        string `csv:"date" json:"date"`
	Description string `csv:"description" json:"description"`
	Amount      string `csv:"amount" json:"amount"`
	Category    string `csv:"category" json:"category"`
	Matched     bool   `csv:"matched" json:"matched"`
	Keyword     string `csv:"keyword" json:"keyword,omitempty"`
}

// NeedsReview reports whether a human has to pick the category.
func (ct ClassifiedTransaction) NeedsReview() bool {
	return !ct.Matched
}

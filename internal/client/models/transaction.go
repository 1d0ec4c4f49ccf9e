package models

import "time"

// TransactionType tells income from expense.
type TransactionType string

const (
	TransactionPositive TransactionType = "positive"
	TransactionNegative TransactionType = "negative"
)

// Transaction is one ledger record.
type Transaction struct {
	ID       string          `json:"id"`
	Name     string          `json:"name" validate:"required"`
	Amount   float64         `json:"amount" validate:"gt=0"`
	Category string          `json:"category" validate:"category"`
	Type     TransactionType `json:"type" validate:"oneof=positive negative"`
	Date     time.Time       `json:"date"`
}

// Signed returns the amount with the sign implied by the type.
func (t Transaction) Signed() float64 {
	if t.Type == TransactionNegative {
		return -t.Amount
	}
	return t.Amount
}

// Category groups transactions in listings and summaries.
type Category struct {
	Key  string
	Name string
}

// Categories is the fixed set a transaction may be filed under.
var Categories = []Category{
	{Key: "purchases", Name: "Purchases"},
	{Key: "food", Name: "Food"},
	{Key: "salary", Name: "Salary"},
	{Key: "car", Name: "Car"},
	{Key: "leisure", Name: "Leisure"},
	{Key: "studies", Name: "Studies"},
}

// CategoryByKey looks a category up by key.
func CategoryByKey(key string) (Category, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/gofinances/internal/client/models"
)

// CategoryTotal is the outcome spent in one category.
type CategoryTotal struct {
	Category models.Category
	Amount   float64
	// Percent is the share of the total outcome, 0..100.
	Percent float64
}

// Summary aggregates a user's ledger.
type Summary struct {
	Income  float64
	Outcome float64
	Total   float64

	// LastIncome and LastOutcome are the dates of the latest entry of each
	// kind; zero when there is none.
	LastIncome  time.Time
	LastOutcome time.Time

	// ByCategory lists outcome per category, largest first. Categories
	// without expenses are omitted.
	ByCategory []CategoryTotal
}

// Summarize computes the user's totals.
func (a *Accessor) Summarize(ctx context.Context, userID string) (Summary, error) {
	list, err := a.List(ctx, userID)
	if err != nil {
		return Summary{}, err
	}
	return summarize(list), nil
}

func summarize(list []models.Transaction) Summary {
	var s Summary
	perCategory := map[string]float64{}

	for _, tx := range list {
		switch tx.Type {
		case models.TransactionPositive:
			s.Income += tx.Amount
			if tx.Date.After(s.LastIncome) {
				s.LastIncome = tx.Date
			}
		case models.TransactionNegative:
			s.Outcome += tx.Amount
			perCategory[tx.Category] += tx.Amount
			if tx.Date.After(s.LastOutcome) {
				s.LastOutcome = tx.Date
			}
		}
	}
	s.Total = s.Income - s.Outcome

	for _, c := range models.Categories {
		amount, ok := perCategory[c.Key]
		if !ok {
			continue
		}
		ct := CategoryTotal{Category: c, Amount: amount}
		if s.Outcome > 0 {
			ct.Percent = amount / s.Outcome * 100
		}
		s.ByCategory = append(s.ByCategory, ct)
	}
	sort.SliceStable(s.ByCategory, func(i, j int) bool {
		return s.ByCategory[i].Amount > s.ByCategory[j].Amount
	})

	return s
}

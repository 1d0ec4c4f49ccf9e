package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gofinances/internal/client/models"
)

// Add prompts for a transaction and appends it to the user's ledger.
func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}

	rawAmount, err := GetSimpleText(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	amount, err := parseAmount(rawAmount)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid amount")
		return err
	}

	rawType, err := GetSimpleText(a.reader, "Type: (i)ncome or (o)utcome", a.out)
	if err != nil {
		return err
	}

	rawCategory, err := GetSimpleText(a.reader, "Category: "+categoryMenu(), a.out)
	if err != nil {
		return err
	}

	tx, err := a.ledger.Append(ctx, a.user().ID, models.Transaction{
		Name:     name,
		Amount:   amount,
		Type:     parseType(rawType),
		Category: parseCategory(rawCategory),
	})
	if err != nil {
		a.logger.Debug(ctx, "append rejected", "error", err)
		fmt.Fprintf(a.out, "Could not save transaction: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Saved %q %s\n", tx.Name, formatMoney(tx.Signed()))
	return nil
}

// List prints the user's transactions in the order they were registered.
func (a *App) List(ctx context.Context) error {
	list, err := a.ledger.List(ctx, a.user().ID)
	if err != nil {
		a.logger.Error(ctx, "failed to list transactions", "error", err)
		fmt.Fprintln(a.out, "Could not load transactions")
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No transactions yet")
		return nil
	}

	for _, tx := range list {
		category := tx.Category
		if c, ok := models.CategoryByKey(tx.Category); ok {
			category = c.Name
		}
		fmt.Fprintf(a.out, "%-24s %16s  %-10s %s\n", tx.Name, formatMoney(tx.Signed()), category, formatDate(tx.Date))
	}
	return nil
}

// Summary prints income, outcome, total and the outcome per category.
func (a *App) Summary(ctx context.Context) error {
	s, err := a.ledger.Summarize(ctx, a.user().ID)
	if err != nil {
		a.logger.Error(ctx, "failed to summarize transactions", "error", err)
		fmt.Fprintln(a.out, "Could not load transactions")
		return err
	}

	fmt.Fprintf(a.out, "Income:  %16s%s\n", formatMoney(s.Income), lastEntry(s.LastIncome.IsZero(), "income", formatDate(s.LastIncome)))
	fmt.Fprintf(a.out, "Outcome: %16s%s\n", formatMoney(s.Outcome), lastEntry(s.LastOutcome.IsZero(), "outcome", formatDate(s.LastOutcome)))
	fmt.Fprintf(a.out, "Total:   %16s\n", formatMoney(s.Total))

	if len(s.ByCategory) > 0 {
		fmt.Fprintln(a.out, "By category:")
		for _, ct := range s.ByCategory {
			fmt.Fprintf(a.out, "  %-10s %16s %5.1f%%\n", ct.Category.Name, formatMoney(ct.Amount), ct.Percent)
		}
	}
	return nil
}

func lastEntry(none bool, kind, date string) string {
	if none {
		return ""
	}
	return fmt.Sprintf("  (last %s on %s)", kind, date)
}

func categoryMenu() string {
	items := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		items[i] = fmt.Sprintf("%d) %s", i+1, c.Name)
	}
	return strings.Join(items, "  ")
}

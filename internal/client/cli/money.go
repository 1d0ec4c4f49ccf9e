package cli

import (
	"math"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	moneyPrinter = message.NewPrinter(language.BrazilianPortuguese)
	moneyUnit    = currency.BRL
)

// formatMoney renders v as Brazilian reais, e.g. "R$ 1.234,50" or
// "- R$ 59,90".
func formatMoney(v float64) string {
	scale, _ := currency.Standard.Rounding(moneyUnit)
	sym := moneyPrinter.Sprint(currency.Symbol(moneyUnit))
	amount := moneyPrinter.Sprint(number.Decimal(math.Abs(v), number.Scale(scale)))
	if v < 0 {
		return "- " + sym + " " + amount
	}
	return sym + " " + amount
}

func formatDate(t time.Time) string {
	return t.Local().Format("02/01/2006")
}

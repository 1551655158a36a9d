package analysis

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"emobudget-server/src/models"
)

const (
	CategoryShops        = "SHOPS"
	CategoryFoodAndDrink = "FOOD_AND_DRINK"
)

// Advice thresholds. Amounts are compared as decimals so float noise in the
// wire values cannot flip a branch.
var (
	highExpense  = decimal.NewFromInt(1000)
	highRecent   = decimal.NewFromInt(700)
	lowExpense   = decimal.NewFromInt(500)
	lowRecent    = decimal.NewFromInt(300)
	weekendMin   = decimal.NewFromInt(200)
	recentWindow = 14 * 24 * time.Hour
)

// parseDate accepts the plain dates Plaid emits and the RFC3339 timestamps
// older records carried. Anything else is reported unparseable.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// spendingSums walks the transaction set once and returns the two aggregates
// the advice rules are built on: spending in SHOPS/FOOD_AND_DRINK within the
// last 14 days, and SHOPS spending on Saturdays and Sundays over the whole
// set. Transactions with unparseable dates contribute to neither.
func spendingSums(transactions []models.Transaction, now time.Time) (recent, weekend decimal.Decimal) {
	cutoff := now.Add(-recentWindow)
	for _, tx := range transactions {
		date, ok := parseDate(tx.Date)
		if !ok {
			continue
		}
		amount := decimal.NewFromFloat(tx.Amount)
		if !date.Before(cutoff) && (tx.Category == CategoryShops || tx.Category == CategoryFoodAndDrink) {
			recent = recent.Add(amount)
		}
		if (date.Weekday() == time.Saturday || date.Weekday() == time.Sunday) && tx.Category == CategoryShops {
			weekend = weekend.Add(amount)
		}
	}
	return recent, weekend
}

// GenerateAdvice produces the advisory line shown next to an upcoming
// expense. It is the single source of truth for the rule set; the stored
// advice on an expense record, when present, was produced here at creation
// time and wins over recomputation.
//
// The branch order matters: an expense matching neither the high nor the low
// tier falls through to the weekend rule regardless of its amount.
func GenerateAdvice(expense models.ImportantExpense, transactions []models.Transaction, now time.Time) string {
	recent, weekend := spendingSums(transactions, now)
	amount := decimal.NewFromFloat(expense.Amount)

	switch {
	case amount.GreaterThanOrEqual(highExpense) && recent.GreaterThanOrEqual(highRecent):
		return fmt.Sprintf("Spending More Recent Spending Compared to Planned Spending %s. Cut Spending This Week!", expense.Name)
	case amount.LessThanOrEqual(lowExpense) && recent.LessThanOrEqual(lowRecent):
		return fmt.Sprintf("We are in a relaxed state compared to the estimated expenditure of %s", expense.Name)
	case weekend.GreaterThanOrEqual(weekendMin):
		return fmt.Sprintf("%s Use $%s for weekend shopping before payment, be warned.", expense.Name, weekend.String())
	default:
		return fmt.Sprintf("There are no specific issues for the upcoming %s.", expense.Name)
	}
}

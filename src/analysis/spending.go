package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"emobudget-server/src/models"
)

// dominantShare is the fraction of total spending above which a single
// category is called out in the narrative.
var dominantShare = decimal.NewFromFloat(0.4)

// Build computes the spending-pattern projection served by
// GET /api/analysis/spending-pattern. Only positive amounts count as
// spending; inflows and transactions with unparseable dates are ignored in
// the aggregates but still returned in the transaction list.
func Build(transactions []models.Transaction, now time.Time) models.SpendingAnalysis {
	totals := map[string]decimal.Decimal{}
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Amount <= 0 || tx.Category == "" {
			continue
		}
		if _, ok := parseDate(tx.Date); !ok {
			continue
		}
		amount := decimal.NewFromFloat(tx.Amount)
		totals[tx.Category] = totals[tx.Category].Add(amount)
		total = total.Add(amount)
	}

	byCategory := make(map[string]float64, len(totals))
	for category, sum := range totals {
		byCategory[category] = sum.InexactFloat64()
	}

	top := topCategory(totals)

	return models.SpendingAnalysis{
		TopCategory:              top,
		SpendingByCategory:       byCategory,
		EmotionalSpendingPattern: narrative(transactions, totals, total, top, now),
		Transactions:             transactions,
	}
}

// topCategory picks the category with the largest sum; ties break
// alphabetically so the projection is deterministic.
func topCategory(totals map[string]decimal.Decimal) string {
	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	top := ""
	best := decimal.Zero
	for _, category := range categories {
		if top == "" || totals[category].GreaterThan(best) {
			top = category
			best = totals[category]
		}
	}
	return top
}

// narrative renders the multi-line emotional spending summary: a headline
// first, then one observation per detected pattern.
func narrative(transactions []models.Transaction, totals map[string]decimal.Decimal, total decimal.Decimal, top string, now time.Time) string {
	if top == "" {
		return "No spending detected for this period."
	}

	lines := []string{
		fmt.Sprintf("Your top spending category over this period is %s.", top),
	}

	recent, weekend := spendingSums(transactions, now)
	if recent.GreaterThanOrEqual(highRecent) {
		lines = append(lines, fmt.Sprintf("High emotional spending risk: $%s went to shopping and dining in the last 14 days.", recent.String()))
	}
	if weekend.GreaterThanOrEqual(weekendMin) {
		lines = append(lines, fmt.Sprintf("Weekend shopping habit: $%s spent in %s on Saturdays and Sundays.", weekend.String(), CategoryShops))
	}
	if total.IsPositive() {
		share := totals[top].Div(total)
		if share.GreaterThanOrEqual(dominantShare) {
			percent := share.Mul(decimal.NewFromInt(100)).Round(0)
			lines = append(lines, fmt.Sprintf("%s%% of your spending is concentrated in %s.", percent.String(), top))
		}
	}

	return strings.Join(lines, "\n")
}

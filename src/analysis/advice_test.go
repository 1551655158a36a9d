package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emobudget-server/src/models"
)

// A Wednesday, so the preceding weekend is inside the 14-day window and the
// one five weeks back is well outside it.
var now = time.Date(2025, 3, 19, 12, 0, 0, 0, time.UTC)

func day(offset int) string {
	return now.AddDate(0, 0, offset).Format("2006-01-02")
}

func TestGenerateAdvice_CutSpending(t *testing.T) {
	expense := models.ImportantExpense{Name: "Rent", Amount: 1200}
	transactions := []models.Transaction{
		{Name: "Mall", Amount: 400, Date: day(-3), Category: CategoryShops},
		{Name: "Dinner", Amount: 350, Date: day(-5), Category: CategoryFoodAndDrink},
	}

	advice := GenerateAdvice(expense, transactions, now)
	assert.Equal(t, "Spending More Recent Spending Compared to Planned Spending Rent. Cut Spending This Week!", advice)
}

func TestGenerateAdvice_Relaxed(t *testing.T) {
	expense := models.ImportantExpense{Name: "Gym", Amount: 400}
	transactions := []models.Transaction{
		{Name: "Lunch", Amount: 200, Date: day(-2), Category: CategoryFoodAndDrink},
	}

	advice := GenerateAdvice(expense, transactions, now)
	assert.Equal(t, "We are in a relaxed state compared to the estimated expenditure of Gym", advice)
}

func TestGenerateAdvice_WeekendWarning(t *testing.T) {
	// Saturday and Sunday of the previous weekend
	expense := models.ImportantExpense{Name: "Insurance", Amount: 800}
	transactions := []models.Transaction{
		{Name: "Outlet", Amount: 100, Date: day(-4), Category: CategoryShops},  // Saturday
		{Name: "Market", Amount: 150, Date: day(-3), Category: CategoryShops}, // Sunday
	}
	require.Equal(t, time.Saturday, now.AddDate(0, 0, -4).Weekday())
	require.Equal(t, time.Sunday, now.AddDate(0, 0, -3).Weekday())

	advice := GenerateAdvice(expense, transactions, now)
	assert.Equal(t, "Insurance Use $250 for weekend shopping before payment, be warned.", advice)
}

func TestGenerateAdvice_Neutral(t *testing.T) {
	expense := models.ImportantExpense{Name: "Car Payment", Amount: 800}
	transactions := []models.Transaction{
		{Name: "Outlet", Amount: 50, Date: day(-4), Category: CategoryShops}, // Saturday, below threshold
		{Name: "Rent", Amount: 900, Date: day(-1), Category: "HOUSING"},
	}

	advice := GenerateAdvice(expense, transactions, now)
	assert.Equal(t, "There are no specific issues for the upcoming Car Payment.", advice)
}

func TestGenerateAdvice_LowTierWinsOverWeekendRule(t *testing.T) {
	// Weekend shopping five weeks back: outside the 14-day window, so it
	// leaves recentSpending alone, but the weekend sum has no window and
	// would trigger the warning. The relaxed branch runs first.
	expense := models.ImportantExpense{Name: "Netflix", Amount: 20}
	oldSaturday := day(-39)
	require.Equal(t, time.Saturday, now.AddDate(0, 0, -39).Weekday())
	transactions := []models.Transaction{
		{Name: "Outlet", Amount: 250, Date: oldSaturday, Category: CategoryShops},
	}

	advice := GenerateAdvice(expense, transactions, now)
	assert.Equal(t, "We are in a relaxed state compared to the estimated expenditure of Netflix", advice)
}

func TestGenerateAdvice_EmptyTransactions(t *testing.T) {
	t.Run("small expense relaxes", func(t *testing.T) {
		advice := GenerateAdvice(models.ImportantExpense{Name: "Coffee", Amount: 5}, nil, now)
		assert.Equal(t, "We are in a relaxed state compared to the estimated expenditure of Coffee", advice)
	})

	t.Run("mid-tier expense stays neutral", func(t *testing.T) {
		advice := GenerateAdvice(models.ImportantExpense{Name: "Flight", Amount: 800}, nil, now)
		assert.Equal(t, "There are no specific issues for the upcoming Flight.", advice)
	})
}

func TestGenerateAdvice_UnparseableDateExcluded(t *testing.T) {
	expense := models.ImportantExpense{Name: "Rent", Amount: 1200}
	// The parseable row sits on a Monday so the weekend rule stays quiet and
	// only the date-exclusion path decides the outcome.
	require.Equal(t, time.Monday, now.AddDate(0, 0, -2).Weekday())
	transactions := []models.Transaction{
		{Name: "Mall", Amount: 400, Date: day(-2), Category: CategoryShops},
		{Name: "Bad Row", Amount: 5000, Date: "not-a-date", Category: CategoryShops},
	}

	// 400 alone is below the 700 threshold; the unparseable row must not
	// push it over.
	advice := GenerateAdvice(expense, transactions, now)
	assert.Equal(t, "There are no specific issues for the upcoming Rent.", advice)
}

func TestGenerateAdvice_HighAndLowTiersExclusive(t *testing.T) {
	// 1000 <= 500 can never hold, so no (expense, spending) pair satisfies
	// both tier conditions. Spot-check the boundary amounts.
	transactions := []models.Transaction{
		{Name: "Mall", Amount: 750, Date: day(-1), Category: CategoryShops},
	}
	high := GenerateAdvice(models.ImportantExpense{Name: "A", Amount: 1000}, transactions, now)
	assert.Contains(t, high, "Cut Spending This Week!")

	low := GenerateAdvice(models.ImportantExpense{Name: "B", Amount: 500}, []models.Transaction{
		{Name: "Lunch", Amount: 300, Date: day(-1), Category: CategoryFoodAndDrink},
	}, now)
	assert.Contains(t, low, "relaxed state")
}

func TestParseDate(t *testing.T) {
	_, ok := parseDate("2025-03-19")
	assert.True(t, ok)

	_, ok = parseDate("2025-03-19T12:00:00Z")
	assert.True(t, ok)

	_, ok = parseDate("03/19/2025")
	assert.False(t, ok)
}

package analysis

import (
	"time"

	"emobudget-server/src/models"
)

// SampleTransactions is the fixture dataset behind ?test=true and the
// one-shot fallback when live data is unavailable. Dates are generated
// relative to now so the 14-day and weekend rules stay exercised no matter
// when it is served.
func SampleTransactions(now time.Time) []models.Transaction {
	day := func(offset int) string {
		return now.AddDate(0, 0, -offset).Format("2006-01-02")
	}
	saturday := lastWeekday(now, time.Saturday)
	sunday := lastWeekday(now, time.Sunday)

	return []models.Transaction{
		{Name: "Whole Foods Market", Amount: 86.20, Date: day(1), Category: CategoryFoodAndDrink, AccountID: "sample-checking", AccountNickname: "Everyday Checking"},
		{Name: "Blue Bottle Coffee", Amount: 7.75, Date: day(2), Category: CategoryFoodAndDrink, AccountID: "sample-checking", AccountNickname: "Everyday Checking"},
		{Name: "Uniqlo", Amount: 132.40, Date: saturday.Format("2006-01-02"), Category: CategoryShops, AccountID: "sample-credit", AccountName: "Platinum Card"},
		{Name: "Target", Amount: 118.90, Date: sunday.Format("2006-01-02"), Category: CategoryShops, AccountID: "sample-credit", AccountName: "Platinum Card"},
		{Name: "Chipotle", Amount: 15.35, Date: day(5), Category: CategoryFoodAndDrink, AccountID: "sample-checking", AccountNickname: "Everyday Checking"},
		{Name: "Steam", Amount: 59.99, Date: day(8), Category: "ENTERTAINMENT", AccountID: "sample-credit", AccountName: "Platinum Card"},
		{Name: "Shell Gas", Amount: 48.10, Date: day(10), Category: "TRANSPORTATION", AccountID: "sample-checking", AccountNickname: "Everyday Checking"},
		{Name: "Payroll", Amount: -2400.00, Date: day(12), Category: "INCOME", AccountID: "sample-checking", AccountNickname: "Everyday Checking"},
		{Name: "Cash Deposit", Amount: 25.00, Date: day(3), Category: "TRANSFER", AccountID: models.NoAccountID},
	}
}

// SampleAnalysis runs the real aggregation over the fixture set so the test
// mode response has the same shape and invariants as a live one.
func SampleAnalysis(now time.Time) models.SpendingAnalysis {
	return Build(SampleTransactions(now), now)
}

// lastWeekday returns the most recent day of the given weekday strictly
// before now's date.
func lastWeekday(now time.Time, weekday time.Weekday) time.Time {
	t := now.AddDate(0, 0, -1)
	for t.Weekday() != weekday {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

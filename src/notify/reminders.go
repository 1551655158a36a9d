package notify

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"emobudget-server/src/models"
)

const reminderLeadTime = 14 * 24 * time.Hour

// ScheduleExpenseReminders sets up the two reminders attached to a newly
// created expense: two weeks before the due date and the due date itself.
// Instants that are not strictly in the future are skipped silently; an
// unparseable due date schedules nothing. Returns how many reminders were
// actually scheduled. Only expense creation calls this, never reads.
func ScheduleExpenseReminders(scheduler Scheduler, expense models.ImportantExpense, now time.Time) int {
	due, err := time.Parse("2006-01-02", expense.DueDate)
	if err != nil {
		if due, err = time.Parse(time.RFC3339, expense.DueDate); err != nil {
			log.Printf("ERROR: Skipping reminders for expense %q - unparseable due date %q", expense.Name, expense.DueDate)
			return 0
		}
	}

	amount := strconv.FormatFloat(expense.Amount, 'f', -1, 64)
	scheduled := 0

	reminders := []struct {
		at    time.Time
		title string
		body  string
	}{
		{
			at:    due.Add(-reminderLeadTime),
			title: "Upcoming Expense",
			body:  fmt.Sprintf("%s - $%s (Planned after 2weeks)", expense.Name, amount),
		},
		{
			at:    due,
			title: "Today Expense!",
			body:  fmt.Sprintf("%s - $%s will be charged", expense.Name, amount),
		},
	}

	for _, reminder := range reminders {
		if !reminder.at.After(now) {
			continue
		}
		if _, err := scheduler.ScheduleAt(reminder.at, reminder.title, reminder.body); err != nil {
			log.Printf("ERROR: Failed to schedule reminder for expense %q: %v", expense.Name, err)
			continue
		}
		scheduled++
	}
	return scheduled
}

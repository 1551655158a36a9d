package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emobudget-server/src/models"
)

type recordedReminder struct {
	at    time.Time
	title string
	body  string
}

type fakeScheduler struct {
	scheduled []recordedReminder
}

func (f *fakeScheduler) ScheduleAt(at time.Time, title, body string) (string, error) {
	f.scheduled = append(f.scheduled, recordedReminder{at: at, title: title, body: body})
	return "fake", nil
}

var remindersNow = time.Date(2025, 3, 19, 12, 0, 0, 0, time.UTC)

func TestScheduleExpenseReminders_BothInFuture(t *testing.T) {
	fake := &fakeScheduler{}
	expense := models.ImportantExpense{Name: "Rent", Amount: 1200, DueDate: "2025-04-20"}

	count := ScheduleExpenseReminders(fake, expense, remindersNow)

	require.Equal(t, 2, count)
	require.Len(t, fake.scheduled, 2)

	due := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, due.Add(-14*24*time.Hour), fake.scheduled[0].at)
	assert.Equal(t, "Upcoming Expense", fake.scheduled[0].title)
	assert.Equal(t, "Rent - $1200 (Planned after 2weeks)", fake.scheduled[0].body)

	assert.Equal(t, due, fake.scheduled[1].at)
	assert.Equal(t, "Today Expense!", fake.scheduled[1].title)
	assert.Equal(t, "Rent - $1200 will be charged", fake.scheduled[1].body)
}

func TestScheduleExpenseReminders_DueSoonSkipsLeadReminder(t *testing.T) {
	fake := &fakeScheduler{}
	expense := models.ImportantExpense{Name: "Phone Bill", Amount: 85.5, DueDate: "2025-03-25"}

	count := ScheduleExpenseReminders(fake, expense, remindersNow)

	require.Equal(t, 1, count)
	assert.Equal(t, "Today Expense!", fake.scheduled[0].title)
	assert.Equal(t, "Phone Bill - $85.5 will be charged", fake.scheduled[0].body)
}

func TestScheduleExpenseReminders_PastDueDate(t *testing.T) {
	fake := &fakeScheduler{}
	expense := models.ImportantExpense{Name: "Old Bill", Amount: 40, DueDate: "2025-03-01"}

	count := ScheduleExpenseReminders(fake, expense, remindersNow)

	assert.Zero(t, count)
	assert.Empty(t, fake.scheduled)
}

func TestScheduleExpenseReminders_UnparseableDueDate(t *testing.T) {
	fake := &fakeScheduler{}
	expense := models.ImportantExpense{Name: "Mystery", Amount: 40, DueDate: "someday"}

	count := ScheduleExpenseReminders(fake, expense, remindersNow)

	assert.Zero(t, count)
	assert.Empty(t, fake.scheduled)
}

func TestTimerScheduler_StopCancelsPending(t *testing.T) {
	scheduler := NewTimerScheduler()

	_, err := scheduler.ScheduleAt(time.Now().Add(time.Hour), "t", "b")
	require.NoError(t, err)
	_, err = scheduler.ScheduleAt(time.Now().Add(2*time.Hour), "t2", "b2")
	require.NoError(t, err)

	scheduler.mu.Lock()
	pending := len(scheduler.timers)
	scheduler.mu.Unlock()
	assert.Equal(t, 2, pending)

	scheduler.Stop()

	scheduler.mu.Lock()
	pending = len(scheduler.timers)
	scheduler.mu.Unlock()
	assert.Zero(t, pending)
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"emobudget-server/src/models"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("user@"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("Str0ng!pass"))
	assert.False(t, ValidatePassword("short1!"))
	assert.False(t, ValidatePassword("alllowercase1!"))
	assert.False(t, ValidatePassword("ALLUPPERCASE1!"))
	assert.False(t, ValidatePassword("NoDigits!!"))
	assert.False(t, ValidatePassword("NoSpecial123"))
}

func TestValidateExpense(t *testing.T) {
	valid := models.CreateExpenseRequest{Name: "Rent", Amount: 1200, DueDate: "2025-04-01"}
	assert.Empty(t, ValidateExpense(valid))

	tests := []struct {
		name string
		req  models.CreateExpenseRequest
		want string
	}{
		{"missing name", models.CreateExpenseRequest{Amount: 10, DueDate: "2025-04-01"}, "name is required"},
		{"whitespace name", models.CreateExpenseRequest{Name: "   ", Amount: 10, DueDate: "2025-04-01"}, "name is required"},
		{"zero amount", models.CreateExpenseRequest{Name: "Rent", DueDate: "2025-04-01"}, "amount must be a positive number"},
		{"negative amount", models.CreateExpenseRequest{Name: "Rent", Amount: -5, DueDate: "2025-04-01"}, "amount must be a positive number"},
		{"missing due date", models.CreateExpenseRequest{Name: "Rent", Amount: 10}, "dueDate is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateExpense(tt.req))
		})
	}
}

package util

import (
	"regexp"
	"strings"

	"emobudget-server/src/models"
)

func ValidateEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile("[a-z]").MatchString(password)
	hasUpper := regexp.MustCompile("[A-Z]").MatchString(password)
	hasDigit := regexp.MustCompile("[0-9]").MatchString(password)
	hasSpecial := regexp.MustCompile(`[^A-Za-z0-9]`).MatchString(password)

	return hasLower && hasUpper && hasDigit && hasSpecial
}

// ValidateExpense enforces the submission rules the client also applies: all
// three fields present, amount a positive number. Anything stricter (date
// range checks, currency limits) is deliberately not enforced here.
func ValidateExpense(req models.CreateExpenseRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	if req.Amount <= 0 {
		return "amount must be a positive number"
	}
	if strings.TrimSpace(req.DueDate) == "" {
		return "dueDate is required"
	}
	return ""
}

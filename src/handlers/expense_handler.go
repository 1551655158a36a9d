package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emobudget-server/src/analysis"
	db "emobudget-server/src/db/sql"
	"emobudget-server/src/models"
	"emobudget-server/src/notify"
	"emobudget-server/src/util"
)

func GetMyExpenses(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		expenses, err := db.GetExpensesForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for user %d: %v", userID, err)
			http.Error(w, "failed to retrieve expenses", http.StatusInternalServerError)
			return
		}

		// Older records predate stored advice; fill the gap on the way out
		// so the client never has to compute its own.
		var transactions []models.Transaction
		for i := range expenses {
			if expenses[i].Advice != "" {
				continue
			}
			if transactions == nil {
				transactions, err = db.GetTransactions(r.Context(), pool, userID)
				if err != nil {
					log.Printf("ERROR: Failed to load transactions for advice, user %d: %v", userID, err)
					transactions = []models.Transaction{}
				}
			}
			expenses[i].Advice = analysis.GenerateAdvice(expenses[i], transactions, time.Now())
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expenses)
	}
}

// CreateExpense persists the expense with a freshly computed advice string
// and schedules its reminders. The client re-fetches the list afterwards
// rather than trusting a locally built record, so the response body is just
// the created row.
func CreateExpense(pool *pgxpool.Pool, scheduler notify.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req models.CreateExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create expense request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if msg := util.ValidateExpense(req); msg != "" {
			log.Printf("ERROR: Expense validation failed for user %d: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		expense := models.ImportantExpense{
			UserID:  userID,
			Name:    req.Name,
			Amount:  req.Amount,
			DueDate: req.DueDate,
		}

		transactions, err := db.GetTransactions(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to load transactions for advice, user %d: %v", userID, err)
			transactions = []models.Transaction{}
		}
		expense.Advice = analysis.GenerateAdvice(expense, transactions, time.Now())

		created, err := db.CreateExpense(r.Context(), pool, &expense)
		if err != nil {
			log.Printf("ERROR: Failed to create expense for user %d: %v", userID, err)
			http.Error(w, "failed to create expense", http.StatusInternalServerError)
			return
		}

		scheduled := notify.ScheduleExpenseReminders(scheduler, *created, time.Now())
		log.Printf("INFO: Created expense id %d for user %d, %d reminders scheduled", created.ID, userID, scheduled)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func DeleteExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.ParseInt(expenseIDStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			http.Error(w, "invalid expense id", http.StatusBadRequest)
			return
		}

		if err := db.DeleteExpense(r.Context(), pool, userID, expenseID); err != nil {
			log.Printf("ERROR: Failed to delete expense id %d for user %d: %v", expenseID, userID, err)
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Deleted expense id %d for user %d", expenseID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "expense deleted"})
	}
}

func GetNextExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		expense, err := db.GetNextExpense(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get next expense for user %d: %v", userID, err)
			http.Error(w, "failed to retrieve next expense", http.StatusInternalServerError)
			return
		}
		if expense == nil {
			// Nothing upcoming: the client checks for an empty body
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expense)
	}
}

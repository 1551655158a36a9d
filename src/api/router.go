package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plaid/plaid-go/v41/plaid"

	"emobudget-server/src/handlers"
	"emobudget-server/src/middleware"
	"emobudget-server/src/notify"
)

func NewRouter(pool *pgxpool.Pool, plaidClient *plaid.APIClient, scheduler notify.Scheduler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Auth
	r.Post("/api/auth/register", handlers.Register(pool))
	r.Post("/api/auth/verify-email", handlers.VerifyEmail(pool))
	r.Post("/api/auth/signin", handlers.SignIn(pool))
	r.Post("/api/auth/forgot-password", handlers.ForgotPassword(pool))
	r.Post("/api/auth/reset-password", handlers.ResetPassword(pool))

	// Aggregator webhooks carry their own verification
	r.Post("/api/plaid/webhook", handlers.PlaidWebhook(plaidClient, pool))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware)

		r.Delete("/api/auth/delete-account", handlers.DeleteAccount(pool))

		// Plaid link flow
		r.Post("/api/plaid/create_link_token", handlers.CreateLinkToken(plaidClient))
		r.Post("/api/plaid/get_access_token", handlers.GetAccessToken(plaidClient, pool))
		r.Get("/api/plaid/transactions/sync", handlers.SyncTransactions(plaidClient, pool))

		// Account directory
		r.Get("/accounts/all", handlers.GetAllAccounts(pool))
		r.Get("/accounts/selected", handlers.GetSelectedAccounts(pool))
		r.Post("/accounts/save", handlers.SaveSelectedAccounts(pool))

		// Transactions and analysis
		r.Get("/api/transactions", handlers.GetTransactions(pool))
		r.Get("/api/analysis/spending-pattern", handlers.GetSpendingPattern(pool))

		// Important expenses
		r.Get("/api/expenses/me", handlers.GetMyExpenses(pool))
		r.Get("/api/expenses/me/next", handlers.GetNextExpense(pool))
		r.Post("/api/expenses", handlers.CreateExpense(pool, scheduler))
		r.Delete("/api/expenses/{expense_id}", handlers.DeleteExpense(pool))
	})

	return r
}

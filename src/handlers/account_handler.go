package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	cache "emobudget-server/src/db"
	db "emobudget-server/src/db/sql"
	"emobudget-server/src/models"
)

func GetAllAccounts(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		accounts, err := db.GetAllAccounts(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get accounts for user %d: %v", userID, err)
			http.Error(w, "failed to retrieve accounts", http.StatusInternalServerError)
			return
		}
		if accounts == nil {
			accounts = []models.Account{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(accounts)
	}
}

func GetSelectedAccounts(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		cacheKey := cache.SelectedAccountsCacheKey(userID)
		if cached, found := cache.Cache.Get(cacheKey); found {
			if accounts, ok := cached.([]models.Account); ok {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(accounts)
				return
			}
		}

		accounts, err := db.GetSelectedAccounts(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get selected accounts for user %d: %v", userID, err)
			http.Error(w, "failed to retrieve selected accounts", http.StatusInternalServerError)
			return
		}

		cache.SetAccountCache(cacheKey, accounts)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(accounts)
	}
}

// SaveSelectedAccounts replaces the whole selection. An empty payload is a
// valid selection of nothing, not an error.
func SaveSelectedAccounts(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var selection []models.AccountSelection
		if err := json.NewDecoder(r.Body).Decode(&selection); err != nil {
			log.Printf("ERROR: Failed to decode save accounts request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		for _, sel := range selection {
			if sel.ID == "" {
				http.Error(w, "selection entries require an account id", http.StatusBadRequest)
				return
			}
		}

		if err := db.SaveSelectedAccounts(r.Context(), pool, userID, selection); err != nil {
			log.Printf("ERROR: Failed to save selected accounts for user %d: %v", userID, err)
			http.Error(w, "failed to save selected accounts", http.StatusInternalServerError)
			return
		}

		// Nicknames feed the transaction decoration, so both caches go
		cache.DelAccountCache(cache.SelectedAccountsCacheKey(userID))
		cache.DelAnalysisCache(cache.AnalysisCacheKey(userID))

		log.Printf("INFO: Saved %d selected accounts for user %d", len(selection), userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "accounts saved",
		})
	}
}

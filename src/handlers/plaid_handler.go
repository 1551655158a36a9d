package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plaid/plaid-go/v41/plaid"

	cache "emobudget-server/src/db"
	db "emobudget-server/src/db/sql"
	"emobudget-server/src/models"
	"emobudget-server/src/util"
)

func buildLinkTokenRequest(userID int64) *plaid.LinkTokenCreateRequest {
	request := plaid.NewLinkTokenCreateRequest(
		"EmoBudget",
		"en",
		[]plaid.CountryCode{plaid.COUNTRYCODE_US},
	)
	request.SetUser(plaid.LinkTokenCreateRequestUser{
		ClientUserId: strconv.FormatInt(userID, 10),
	})
	request.SetProducts([]plaid.Products{plaid.PRODUCTS_TRANSACTIONS})
	return request
}

func CreateLinkToken(plaidClient *plaid.APIClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		request := buildLinkTokenRequest(userID)
		resp, _, err := plaidClient.PlaidApi.LinkTokenCreate(r.Context()).LinkTokenCreateRequest(*request).Execute()
		if err != nil {
			http.Error(w, "Failed to create link token", http.StatusInternalServerError)
			log.Printf("ERROR: Plaid link token creation failed for user %d: %v", userID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"link_token": resp.GetLinkToken(),
		})
	}
}

// GetAccessToken exchanges the public token from the Link flow, stores the
// item, and pulls its accounts and transactions so the first screen after
// linking already has data.
func GetAccessToken(plaidClient *plaid.APIClient, pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req struct {
			PublicToken string `json:"public_token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode get access token request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		exchangeReq := plaid.NewItemPublicTokenExchangeRequest(req.PublicToken)
		exchangeResp, _, err := plaidClient.PlaidApi.ItemPublicTokenExchange(r.Context()).ItemPublicTokenExchangeRequest(
			*exchangeReq,
		).Execute()
		if err != nil {
			http.Error(w, "Failed to exchange public token", http.StatusInternalServerError)
			log.Printf("ERROR: Plaid public token exchange failed for user %d: %v", userID, err)
			return
		}

		accessToken := exchangeResp.GetAccessToken()
		plaidItemID := exchangeResp.GetItemId()

		itemID, err := db.SavePlaidItem(r.Context(), pool, userID, plaidItemID, accessToken)
		if err != nil {
			http.Error(w, "Failed to save plaid item", http.StatusInternalServerError)
			log.Printf("ERROR: Failed to save plaid item for user %d: %v", userID, err)
			return
		}

		accountsReq := plaid.NewAccountsGetRequest(accessToken)
		accountsResp, _, err := plaidClient.PlaidApi.AccountsGet(r.Context()).AccountsGetRequest(*accountsReq).Execute()
		if err != nil {
			http.Error(w, "Failed to fetch accounts from Plaid", http.StatusInternalServerError)
			log.Printf("ERROR: Failed to fetch accounts for user %d, item %s: %v", userID, plaidItemID, err)
			return
		}
		if err := db.SaveAccounts(r.Context(), pool, itemID, accountsResp.GetAccounts()); err != nil {
			http.Error(w, "Failed to save accounts", http.StatusInternalServerError)
			log.Printf("ERROR: Failed to save accounts for user %d: %v", userID, err)
			return
		}

		item := models.PlaidItem{ID: itemID, UserID: userID, ItemID: plaidItemID, AccessToken: accessToken}
		if err := syncItemTransactions(r.Context(), plaidClient, pool, &item); err != nil {
			// The webhook or the sync endpoint will catch up later
			log.Printf("ERROR: Initial transaction sync failed for user %d, item %s: %v", userID, plaidItemID, err)
		}

		log.Printf("INFO: Linked plaid item %s for user %d", plaidItemID, userID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"item_id": plaidItemID,
		})
	}
}

// SyncTransactions pulls new transactions for every item the user has
// linked. The client calls it right after linking; Plaid webhooks trigger
// the same path for background updates.
func SyncTransactions(plaidClient *plaid.APIClient, pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		items, err := db.GetPlaidItems(r.Context(), pool, userID)
		if err != nil {
			http.Error(w, "Failed to retrieve plaid items", http.StatusInternalServerError)
			log.Printf("ERROR: Failed to get plaid items for user %d: %v", userID, err)
			return
		}

		for i := range items {
			if err := syncItemTransactions(r.Context(), plaidClient, pool, &items[i]); err != nil {
				http.Error(w, "Failed to sync transactions", http.StatusInternalServerError)
				log.Printf("ERROR: Failed to sync transactions for user %d, item %d: %v", userID, items[i].ID, err)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "transactions synced"})
	}
}

// PlaidWebhook handles aggregator-initiated updates. The payload is only
// trusted after its Plaid-Verification JWT checks out.
func PlaidWebhook(plaidClient *plaid.APIClient, pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read body", http.StatusBadRequest)
			return
		}

		if err := util.VerifyPlaidWebhook(r.Context(), plaidClient, body, r.Header.Get("Plaid-Verification")); err != nil {
			log.Printf("ERROR: Plaid webhook verification failed: %v", err)
			http.Error(w, "verification failed", http.StatusUnauthorized)
			return
		}

		var payload struct {
			WebhookType string `json:"webhook_type"`
			WebhookCode string `json:"webhook_code"`
			ItemID      string `json:"item_id"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}

		if payload.WebhookType == "TRANSACTIONS" {
			item, err := db.GetItemByPlaidItemID(r.Context(), pool, payload.ItemID)
			if err != nil {
				log.Printf("ERROR: Webhook for unknown item %s: %v", payload.ItemID, err)
				http.Error(w, "unknown item", http.StatusNotFound)
				return
			}
			if err := syncItemTransactions(r.Context(), plaidClient, pool, item); err != nil {
				log.Printf("ERROR: Webhook-triggered sync failed for item %s: %v", payload.ItemID, err)
				http.Error(w, "sync failed", http.StatusInternalServerError)
				return
			}
			log.Printf("INFO: Webhook %s/%s processed for item %s", payload.WebhookType, payload.WebhookCode, payload.ItemID)
		}

		w.WriteHeader(http.StatusOK)
	}
}

// syncItemTransactions runs the cursor-based sync loop for one item and
// drops the owner's cached analysis so the next fetch sees the new data.
func syncItemTransactions(ctx context.Context, plaidClient *plaid.APIClient, pool *pgxpool.Pool, item *models.PlaidItem) error {
	cursor, err := db.GetSyncCursor(ctx, pool, item.ID)
	if err != nil {
		return err
	}

	hasMore := true
	for hasMore {
		request := plaid.NewTransactionsSyncRequest(item.AccessToken)
		if cursor != "" {
			request.SetCursor(cursor)
		}

		resp, _, err := plaidClient.PlaidApi.TransactionsSync(ctx).TransactionsSyncRequest(*request).Execute()
		if err != nil {
			return err
		}

		if err := db.SaveTransactions(ctx, pool, item.UserID, resp.GetAdded()); err != nil {
			return err
		}

		cursor = resp.GetNextCursor()
		hasMore = resp.GetHasMore()
	}

	if err := db.UpdateSyncCursor(ctx, pool, item.ID, cursor); err != nil {
		return err
	}

	cache.DelAnalysisCache(cache.AnalysisCacheKey(item.UserID))
	return nil
}

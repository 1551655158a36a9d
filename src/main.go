package main

import (
	"context"
	"log"
	"net/http"

	"emobudget-server/src/api"
	"emobudget-server/src/config"
	"emobudget-server/src/db"
	"emobudget-server/src/notify"
	"emobudget-server/src/plaid"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	db.InitCache()

	plaidClient := plaid.NewPlaidClient(cfg.PlaidClientID, cfg.PlaidSecret, cfg.PlaidEnv)

	scheduler := notify.NewTimerScheduler()
	defer scheduler.Stop()

	// Router
	router := api.NewRouter(pool, plaidClient, scheduler)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}

package db

import (
	"fmt"
	"log"

	"github.com/dgraph-io/ristretto"
)

// Cache holds per-user read projections: the computed spending analysis and
// the selected-accounts set. Both are invalidated whenever the data they
// derive from changes (transaction sync, selection save, account deletion).
var Cache *ristretto.Cache

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func AnalysisCacheKey(userID int64) string {
	return fmt.Sprintf("analysis:%d", userID)
}

func SelectedAccountsCacheKey(userID int64) string {
	return fmt.Sprintf("selected-accounts:%d", userID)
}

func SetAnalysisCache(cacheKey string, value interface{}) {
	Cache.Set(cacheKey, value, 1)
}

func DelAnalysisCache(cacheKey string) {
	Cache.Del(cacheKey)
}

func SetAccountCache(cacheKey string, value interface{}) {
	Cache.Set(cacheKey, value, 1)
}

func DelAccountCache(cacheKey string) {
	Cache.Del(cacheKey)
}

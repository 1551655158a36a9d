package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"emobudget-server/src/models"
)

func TestResolveAccountLabel_Precedence(t *testing.T) {
	accountMap := map[string]string{"acc-1": "Travel Card"}

	t.Run("transaction nickname wins over everything", func(t *testing.T) {
		tx := models.Transaction{AccountID: "acc-1", AccountNickname: "My Card", AccountName: "Chase Sapphire"}
		assert.Equal(t, "My Card", ResolveAccountLabel(tx, accountMap))
	})

	t.Run("account name beats the map lookup", func(t *testing.T) {
		tx := models.Transaction{AccountID: "acc-1", AccountName: "Chase Sapphire"}
		assert.Equal(t, "Chase Sapphire", ResolveAccountLabel(tx, accountMap))
	})

	t.Run("map lookup by accountId", func(t *testing.T) {
		tx := models.Transaction{AccountID: "acc-1"}
		assert.Equal(t, "Travel Card", ResolveAccountLabel(tx, accountMap))
	})

	t.Run("sentinel id skips the lookup", func(t *testing.T) {
		tx := models.Transaction{AccountID: models.NoAccountID}
		assert.Equal(t, NoAccountLabel, ResolveAccountLabel(tx, accountMap))
	})

	t.Run("missing id falls back to placeholder", func(t *testing.T) {
		tx := models.Transaction{}
		assert.Equal(t, NoAccountLabel, ResolveAccountLabel(tx, accountMap))
	})

	t.Run("unknown id falls back to placeholder", func(t *testing.T) {
		tx := models.Transaction{AccountID: "acc-unknown"}
		assert.Equal(t, NoAccountLabel, ResolveAccountLabel(tx, accountMap))
	})
}

func TestBuildAccountMap(t *testing.T) {
	accounts := []models.Account{
		{AccountID: "acc-1", Name: "Checking", Nickname: "Daily"},
		{AccountID: "acc-2", Name: "Savings"},
		{AccountID: "acc-3"},
		{Name: "Orphan"},
	}

	m := BuildAccountMap(accounts)

	assert.Equal(t, "Daily", m["acc-1"])
	assert.Equal(t, "Savings", m["acc-2"])
	assert.Equal(t, "(no name)", m["acc-3"])
	assert.Len(t, m, 3)
}

func TestDecorateTransactions(t *testing.T) {
	accounts := []models.Account{
		{AccountID: "acc-1", Name: "Checking", Nickname: "Daily"},
	}
	transactions := []models.Transaction{
		{Name: "Cafe", AccountID: "acc-1"},
		{Name: "Keeps own", AccountID: "acc-1", AccountNickname: "Already Set"},
		{Name: "No account", AccountID: models.NoAccountID},
	}

	decorated := DecorateTransactions(transactions, accounts)

	assert.Equal(t, "Daily", decorated[0].AccountNickname)
	assert.Equal(t, "Already Set", decorated[1].AccountNickname)
	assert.Empty(t, decorated[2].AccountNickname)
}

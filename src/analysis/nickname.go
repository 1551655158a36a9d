package analysis

import "emobudget-server/src/models"

// NoAccountLabel is what the transaction list shows when a transaction
// cannot be tied to any account.
const NoAccountLabel = "No account information"

// noNameLabel fills the map entry for an account that has neither a nickname
// nor an institution name.
const noNameLabel = "(no name)"

// BuildAccountMap maps accountId to display label for the selected set,
// falling back nickname -> name -> placeholder.
func BuildAccountMap(accounts []models.Account) map[string]string {
	m := make(map[string]string, len(accounts))
	for _, account := range accounts {
		if account.AccountID == "" {
			continue
		}
		label := account.Nickname
		if label == "" {
			label = account.Name
		}
		if label == "" {
			label = noNameLabel
		}
		m[account.AccountID] = label
	}
	return m
}

// ResolveAccountLabel picks the account label for one transaction. The
// precedence order is fixed: the transaction's own nickname, then its
// denormalized account name, then a lookup in the selected set, then the
// no-account placeholder. Reordering changes what users see.
func ResolveAccountLabel(tx models.Transaction, accountMap map[string]string) string {
	if tx.AccountNickname != "" {
		return tx.AccountNickname
	}
	if tx.AccountName != "" {
		return tx.AccountName
	}
	if tx.AccountID != "" && tx.AccountID != models.NoAccountID {
		if label, ok := accountMap[tx.AccountID]; ok {
			return label
		}
	}
	return NoAccountLabel
}

// DecorateTransactions fills the denormalized accountNickname field from the
// selected set for transactions that do not already carry one.
func DecorateTransactions(transactions []models.Transaction, accounts []models.Account) []models.Transaction {
	accountMap := BuildAccountMap(accounts)
	for i := range transactions {
		if transactions[i].AccountNickname != "" {
			continue
		}
		if transactions[i].AccountID == "" || transactions[i].AccountID == models.NoAccountID {
			continue
		}
		if label, ok := accountMap[transactions[i].AccountID]; ok {
			transactions[i].AccountNickname = label
		}
	}
	return transactions
}

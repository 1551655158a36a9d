package handlers

import (
	"testing"

	"github.com/plaid/plaid-go/v41/plaid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLinkTokenRequest(t *testing.T) {
	request := buildLinkTokenRequest(42)

	assert.Equal(t, "EmoBudget", request.GetClientName())
	assert.Equal(t, "en", request.GetLanguage())
	assert.Equal(t, []plaid.CountryCode{plaid.COUNTRYCODE_US}, request.GetCountryCodes())
	assert.Equal(t, []plaid.Products{plaid.PRODUCTS_TRANSACTIONS}, request.GetProducts())

	user, ok := request.GetUserOk()
	require.True(t, ok)
	assert.Equal(t, "42", user.ClientUserId)
}

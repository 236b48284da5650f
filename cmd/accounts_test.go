package main

import (
	"net/http"
	"testing"

	"github.com/nexusclub/nexus-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccountRoundTrip(t *testing.T) {
	app := newTestApplication(t, newFakeStore())
	token := adminToken(t, app)

	w := doRequest(t, app, http.MethodPost, "/api/accounts", token, map[string]any{
		"accountName": "Asha",
		"userId":      "asha01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Account models.Account `json:"account"`
	}
	decodeResponse(t, w, &created)
	assert.Equal(t, "Asha", created.Account.AccountName)
	assert.Equal(t, "asha01", created.Account.UserID)
	assert.NotEmpty(t, created.Account.ID)

	w = doRequest(t, app, http.MethodGet, "/api/accounts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Accounts []models.Account `json:"accounts"`
	}
	decodeResponse(t, w, &listed)
	require.Len(t, listed.Accounts, 1)
	assert.Equal(t, "asha01", listed.Accounts[0].UserID)
}

func TestListAccountsOrderedByNewestFirst(t *testing.T) {
	app := newTestApplication(t, newFakeStore())
	token := adminToken(t, app)

	mustCreateAccount(t, app, token, "First", "first")
	mustCreateAccount(t, app, token, "Second", "second")

	w := doRequest(t, app, http.MethodGet, "/api/accounts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Accounts []models.Account `json:"accounts"`
	}
	decodeResponse(t, w, &listed)
	require.Len(t, listed.Accounts, 2)
	assert.Equal(t, "second", listed.Accounts[0].UserID)
	assert.Equal(t, "first", listed.Accounts[1].UserID)
}

func TestCreateAccountMissingFields(t *testing.T) {
	app := newTestApplication(t, newFakeStore())
	token := adminToken(t, app)

	w := doRequest(t, app, http.MethodPost, "/api/accounts", token, map[string]any{
		"accountName": "Asha",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Account name and user ID are required", errorMessage(t, w))
}

func TestCreateAccountRequiresAdmin(t *testing.T) {
	app := newTestApplication(t, newFakeStore())

	w := doRequest(t, app, http.MethodPost, "/api/accounts", "", map[string]any{
		"accountName": "Asha",
		"userId":      "asha01",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteAccountMissingID(t *testing.T) {
	app := newTestApplication(t, newFakeStore())
	token := adminToken(t, app)

	w := doRequest(t, app, http.MethodDelete, "/api/accounts", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Account ID is required", errorMessage(t, w))
}

func TestDeleteAccountLeavesContentOrphaned(t *testing.T) {
	store := newFakeStore()
	app := newTestApplication(t, store)
	token := adminToken(t, app)

	mustCreateAccount(t, app, token, "Asha", "asha01")
	mustCreateContent(t, app, "asha01", models.ContentTypeRepo, "My Lib")

	var accountID string
	for id := range store.accounts {
		accountID = id
	}

	w := doRequest(t, app, http.MethodDelete, "/api/accounts?id="+accountID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Owned content stays queryable after the account is gone.
	w = doRequest(t, app, http.MethodGet, "/api/user-content?userId=asha01", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Content []models.ContentItem `json:"content"`
	}
	decodeResponse(t, w, &listed)
	require.Len(t, listed.Content, 1)
	assert.Equal(t, "My Lib", listed.Content[0].Title)
}

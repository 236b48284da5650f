package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nexusclub/nexus-board/internal/auth"
	"github.com/nexusclub/nexus-board/internal/config"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminPassword = "letmein-board"

func newTestApplication(t *testing.T, store *fakeStore) *application {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return &application{
		config: &config.Config{
			TokenValidity: time.Hour,
		},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		auth:     auth.New(&auth.BcryptVerifier{Hash: hash}, "test-secret"),
		accounts: store,
		content:  store,
		likes:    store,
	}
}

func adminToken(t *testing.T, app *application) string {
	t.Helper()

	token, err := app.auth.GenerateToken(time.Hour)
	require.NoError(t, err)
	return token
}

// doRequest runs a request through the full middleware and routing stack and
// returns the recorded response.
func doRequest(t *testing.T, app *application, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	r := httptest.NewRequest(method, target, reader)
	if token != "" {
		r.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	app.routes().ServeHTTP(w, r)
	return w
}

func newRawRequest(t *testing.T, method, target string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	return httptest.NewRequest(method, target, nil), httptest.NewRecorder()
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var response struct {
		Error string `json:"error"`
	}
	decodeResponse(t, w, &response)
	return response.Error
}

func mustCreateAccount(t *testing.T, app *application, token, accountName, userID string) {
	t.Helper()

	w := doRequest(t, app, http.MethodPost, "/api/accounts", token, map[string]any{
		"accountName": accountName,
		"userId":      userID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func mustCreateContent(t *testing.T, app *application, userID, contentType, title string) string {
	t.Helper()

	w := doRequest(t, app, http.MethodPost, "/api/user-content", "", map[string]any{
		"userId":      userID,
		"contentType": contentType,
		"title":       title,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Content struct {
			ID string `json:"id"`
		} `json:"content"`
	}
	decodeResponse(t, w, &response)
	require.NotEmpty(t, response.Content.ID)
	return response.Content.ID
}

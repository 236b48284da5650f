package main

import (
	"net/http"
	"strings"

	"github.com/nexusclub/nexus-board/internal/validator"
	"github.com/nexusclub/nexus-board/models"
)

func (app *application) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := app.accounts.GetAccounts(r.Context())
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if accounts == nil {
		accounts = []*models.Account{}
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"accounts": accounts}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createAccount(w http.ResponseWriter, r *http.Request) {
	type createAccountPayload struct {
		AccountName string `json:"accountName"`
		UserID      string `json:"userId"`
	}

	var createAccountRequest createAccountPayload

	if err := app.readJSON(w, r, &createAccountRequest); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	accountName := strings.TrimSpace(createAccountRequest.AccountName)
	userID := strings.TrimSpace(createAccountRequest.UserID)

	v := validator.New()
	v.CheckNotBlank(accountName, "accountName", "must be provided")
	v.CheckNotBlank(userID, "userId", "must be provided")

	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: "Account name and user ID are required",
			ErrorDetails: v.Errors,
		})
		return
	}

	// No duplicate-handle check here beyond the store's unique constraint;
	// a violation surfaces as a store failure.
	account, err := app.accounts.CreateAccount(r.Context(), accountName, userID)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusCreated, envelope{"account": account}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id := app.readString(r.URL.Query(), "id", "")

	if id == "" {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: "Account ID is required",
		})
		return
	}

	if err := app.accounts.DeleteAccount(r.Context(), id); err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"message": "Account deleted successfully"}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

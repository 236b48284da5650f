package main

import (
	"net/http"

	"github.com/nexusclub/nexus-board/internal/validator"
)

func (app *application) adminLogin(w http.ResponseWriter, r *http.Request) {
	type adminLoginPayload struct {
		Password string `json:"password"`
	}

	var adminLoginRequest adminLoginPayload

	if err := app.readJSON(w, r, &adminLoginRequest); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	v.CheckNotBlank(adminLoginRequest.Password, "password", "must be provided")

	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	match, err := app.auth.VerifyPassword(adminLoginRequest.Password)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}
	if !match {
		app.unauthorizedResponse(w, r, &AppError{
			ErrorMessage: "Invalid credentials",
		})
		return
	}

	token, err := app.auth.GenerateToken(app.config.TokenValidity)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"token": token}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

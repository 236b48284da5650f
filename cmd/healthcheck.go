package main

import "net/http"

func (app *application) healthcheck(w http.ResponseWriter, r *http.Request) {
	data := envelope{
		"status": "available",
	}

	if err := app.writeJSON(w, http.StatusOK, data, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

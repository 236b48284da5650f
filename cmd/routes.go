package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)

	router.HandlerFunc(http.MethodGet, "/api/healthcheck", app.healthcheck)
	router.HandlerFunc(http.MethodPost, "/api/admin/login", app.adminLogin)

	// Public board routes
	router.HandlerFunc(http.MethodGet, "/api/accounts", app.listAccounts)
	router.HandlerFunc(http.MethodGet, "/api/user-content", app.listContent)
	router.HandlerFunc(http.MethodPost, "/api/user-content", app.createContent)
	router.HandlerFunc(http.MethodPut, "/api/user-content", app.updateContent)
	router.HandlerFunc(http.MethodDelete, "/api/user-content", app.deleteContent)
	router.HandlerFunc(http.MethodGet, "/api/admin-likes", app.getLikes)

	// Require an authenticated admin for these routes
	router.HandlerFunc(http.MethodPost, "/api/accounts", app.requireAdmin(app.createAccount))
	router.HandlerFunc(http.MethodDelete, "/api/accounts", app.requireAdmin(app.deleteAccount))
	router.HandlerFunc(http.MethodPost, "/api/admin-likes", app.requireAdmin(app.likeContent))
	router.HandlerFunc(http.MethodPut, "/api/admin-likes", app.requireAdmin(app.updateLike))
	router.HandlerFunc(http.MethodDelete, "/api/admin-likes", app.requireAdmin(app.unlikeContent))

	return app.recoverPanic(app.authenticate(router))
}

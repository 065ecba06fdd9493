package handler

import (
	"net/http"

	"github.com/msomdec/spendsmarter-api/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Signup and login
// are the only open endpoints besides the health check; everything else sits
// behind the bearer-token middleware.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, txns *service.TransactionService) {
	authHandler := NewAuthHandler(auth)
	txnHandler := NewTransactionHandler(txns)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.Handle("POST /api/auth/edit-profile", RequireAuth(auth, http.HandlerFunc(authHandler.HandleEditProfile)))
	mux.Handle("POST /api/auth/change-password", RequireAuth(auth, http.HandlerFunc(authHandler.HandleChangePassword)))

	mux.Handle("POST /api/transactions", RequireAuth(auth, http.HandlerFunc(txnHandler.HandleCreate)))
	mux.Handle("GET /api/transactions", RequireAuth(auth, http.HandlerFunc(txnHandler.HandleList)))
	mux.Handle("GET /api/transactions/{id}", RequireAuth(auth, http.HandlerFunc(txnHandler.HandleGet)))
	mux.Handle("PUT /api/transactions/{id}", RequireAuth(auth, http.HandlerFunc(txnHandler.HandleUpdate)))
	mux.Handle("DELETE /api/transactions/{id}", RequireAuth(auth, http.HandlerFunc(txnHandler.HandleDelete)))
}

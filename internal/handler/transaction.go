package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/spendsmarter-api/internal/domain"
	"github.com/msomdec/spendsmarter-api/internal/service"
)

// TransactionHandler handles transaction HTTP requests. All routes sit behind
// RequireAuth, so the owner's user ID is always present in the context.
type TransactionHandler struct {
	txns *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txns *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txns: txns}
}

type transactionRequest struct {
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Method   string  `json:"method"`
	Comments string  `json:"comments"`
}

func (req transactionRequest) toInput() service.TransactionInput {
	return service.TransactionInput{
		Type:     req.Type,
		Amount:   req.Amount,
		Name:     req.Name,
		Category: req.Category,
		Date:     req.Date,
		Method:   req.Method,
		Comments: req.Comments,
	}
}

// HandleCreate appends a new transaction to the owner's collection.
// POST /api/transactions
// Response: 201 {"message": "...", "transaction": {...}}
func (h *TransactionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	var req transactionRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := h.txns.Create(r.Context(), userID, req.toInput())
	if err != nil {
		h.writeServiceError(w, err, userID)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Transaction created successfully",
		"transaction": toTransactionDTO(txn),
	})
}

// HandleList returns the owner's full transaction collection, insertion order.
// GET /api/transactions
// Response: 200 {"transactions": [...]}
func (h *TransactionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	txns, err := h.txns.List(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err, userID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": toTransactionDTOs(txns),
	})
}

// HandleGet returns a single transaction from the owner's collection.
// GET /api/transactions/{id}
// Response: 200 {"transaction": {...}}
func (h *TransactionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	txn, err := h.txns.Get(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, err, userID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"transaction": toTransactionDTO(txn),
	})
}

// HandleUpdate overwrites all mutable fields of an existing transaction.
// PUT /api/transactions/{id}
// Response: 200 {"message": "...", "transaction": {...}}
func (h *TransactionHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	var req transactionRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := h.txns.Update(r.Context(), userID, r.PathValue("id"), req.toInput())
	if err != nil {
		h.writeServiceError(w, err, userID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Transaction updated successfully",
		"transaction": toTransactionDTO(txn),
	})
}

// HandleDelete removes a transaction from the owner's collection.
// DELETE /api/transactions/{id}
// Response: 200 {"message": "..."}
func (h *TransactionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	if err := h.txns.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		h.writeServiceError(w, err, userID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Transaction deleted successfully",
	})
}

func (h *TransactionHandler) writeServiceError(w http.ResponseWriter, err error, userID int64) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrTransactionNotFound):
		writeError(w, http.StatusNotFound, "Transaction not found")
	default:
		slog.Error("transaction operation", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}

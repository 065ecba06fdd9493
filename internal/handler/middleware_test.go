package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/msomdec/spendsmarter-api/internal/handler"
	"github.com/msomdec/spendsmarter-api/internal/repository/sqlite"
	"github.com/msomdec/spendsmarter-api/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests"

func newTestServices(t *testing.T) (*service.AuthService, *service.TransactionService) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return service.NewAuthService(db.Users(), testJWTSecret, time.Hour, 4),
		service.NewTransactionService(db.Transactions(), db.Users())
}

func signupAndToken(t *testing.T, auth *service.AuthService, email string) (int64, string) {
	t.Helper()
	user, token, err := auth.Signup(context.Background(), "Test User", email, "password123", "", "")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	return user.ID, token
}

func TestRequireAuth_ValidBearerToken(t *testing.T) {
	auth, _ := newTestServices(t)
	wantID, token := signupAndToken(t, auth, "valid@example.com")

	var gotID int64
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := handler.UserIDFromContext(r.Context())
		if ok {
			gotID = id
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotID != wantID {
		t.Fatalf("expected user id %d in context, got %d", wantID, gotID)
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	auth, _ := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "No token provided") {
		t.Fatalf("expected 'No token provided' body, got %s", body)
	}
}

func TestRequireAuth_HeaderWithoutSpace(t *testing.T) {
	auth, _ := newTestServices(t)
	_, token := signupAndToken(t, auth, "nospace@example.com")

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	// A bare token with no scheme prefix counts as no token at all.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "No token provided") {
		t.Fatalf("expected 'No token provided' body, got %s", body)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	auth, _ := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "Invalid token") {
		t.Fatalf("expected 'Invalid token' body, got %s", body)
	}
}

func TestRequireAuth_TamperedToken(t *testing.T) {
	auth, _ := newTestServices(t)
	_, token := signupAndToken(t, auth, "tamper@example.com")

	tampered := token[:len(token)-1] + "X"

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tampered)
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	auth, _ := newTestServices(t)

	// A second service on the same secret issuing already-expired tokens.
	dbPath := filepath.Join(t.TempDir(), "expired.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	expiredAuth := service.NewAuthService(db.Users(), testJWTSecret, -time.Minute, 4)
	_, expiredToken, err := expiredAuth.Signup(context.Background(), "Expired", "expired@example.com", "password123", "", "")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expiredToken)
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

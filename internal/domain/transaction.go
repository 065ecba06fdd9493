package domain

import (
	"context"
	"time"
)

// Transaction types accepted at the API boundary (stored lowercase).
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"
)

// PaymentMethods is the fixed set of accepted payment methods (stored lowercase).
var PaymentMethods = []string{"upi", "card", "cash", "net banking"}

// Transaction is a single financial entry owned by exactly one user. The ID is
// unique within the owner's collection; lookups always carry the owner's user ID.
type Transaction struct {
	ID        string
	UserID    int64
	Type      string
	Amount    float64
	Name      string
	Category  string
	Date      string
	Method    string
	Comments  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransactionRepository defines persistence operations for transactions.
// Every method is scoped by the owning user's ID; there is intentionally no
// lookup by transaction ID alone.
type TransactionRepository interface {
	Create(ctx context.Context, txn *Transaction) error
	ListByUser(ctx context.Context, userID int64) ([]Transaction, error)
	GetByID(ctx context.Context, userID int64, id string) (*Transaction, error)
	Update(ctx context.Context, txn *Transaction) error
	Delete(ctx context.Context, userID int64, id string) error
}

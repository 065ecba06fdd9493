package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/spendsmarter-api/internal/domain"
)

// TransactionRepository implements domain.TransactionRepository using SQLite.
// Every query carries the owner's user id, so a transaction is unreachable
// through any other user's requests.
type TransactionRepository struct {
	db *sql.DB
}

var _ domain.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new SQLite-backed TransactionRepository.
func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db.SqlDB}
}

func (r *TransactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, user_id, type, amount, name, category, date, method, comments, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.UserID, txn.Type, txn.Amount, txn.Name, txn.Category, txn.Date, txn.Method, txn.Comments, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	txn.CreatedAt = now
	txn.UpdatedAt = now
	return nil
}

// ListByUser returns the owner's transactions in insertion order.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, type, amount, name, category, date, method, comments, created_at, updated_at
		 FROM transactions WHERE user_id = ? ORDER BY seq`, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Name, &t.Category, &t.Date, &t.Method, &t.Comments, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r *TransactionRepository) GetByID(ctx context.Context, userID int64, id string) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, type, amount, name, category, date, method, comments, created_at, updated_at
		 FROM transactions WHERE user_id = ? AND id = ?`, userID, id,
	).Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Name, &t.Category, &t.Date, &t.Method, &t.Comments, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query transaction by id: %w", err)
	}
	return t, nil
}

func (r *TransactionRepository) Update(ctx context.Context, txn *domain.Transaction) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE transactions
		 SET type = ?, amount = ?, name = ?, category = ?, date = ?, method = ?, comments = ?, updated_at = ?
		 WHERE user_id = ? AND id = ?`,
		txn.Type, txn.Amount, txn.Name, txn.Category, txn.Date, txn.Method, txn.Comments, now, txn.UserID, txn.ID,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	txn.UpdatedAt = now
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, userID int64, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/msomdec/spendsmarter-api/internal/domain"
)

// TransactionInput carries the caller-supplied fields for create and update.
// Validation and normalization happen here, not in the handlers.
type TransactionInput struct {
	Type     string
	Amount   float64
	Name     string
	Category string
	Date     string
	Method   string
	Comments string
}

// TransactionService handles transaction CRUD for a single owner. Every
// operation resolves the owner first, then touches only that owner's rows.
type TransactionService struct {
	txns  domain.TransactionRepository
	users domain.UserRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txns domain.TransactionRepository, users domain.UserRepository) *TransactionService {
	return &TransactionService{txns: txns, users: users}
}

// Create validates the input, assigns a fresh id, and appends the transaction
// to the owner's collection.
func (s *TransactionService) Create(ctx context.Context, userID int64, input TransactionInput) (*domain.Transaction, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		ID:       uuid.NewString(),
		UserID:   userID,
		Type:     input.Type,
		Amount:   input.Amount,
		Name:     input.Name,
		Category: input.Category,
		Date:     input.Date,
		Method:   input.Method,
		Comments: input.Comments,
	}

	if err := s.txns.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	return txn, nil
}

// List returns the owner's transactions in insertion order.
func (s *TransactionService) List(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	txns, err := s.txns.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

// Get returns a single transaction from the owner's collection.
func (s *TransactionService) Get(ctx context.Context, userID int64, id string) (*domain.Transaction, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	txn, err := s.txns.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return txn, nil
}

// Update validates the input and overwrites all mutable fields of the
// transaction in place.
func (s *TransactionService) Update(ctx context.Context, userID int64, id string, input TransactionInput) (*domain.Transaction, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	txn, err := s.txns.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	txn.Type = input.Type
	txn.Amount = input.Amount
	txn.Name = input.Name
	txn.Category = input.Category
	txn.Date = input.Date
	txn.Method = input.Method
	txn.Comments = input.Comments

	if err := s.txns.Update(ctx, txn); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	return txn, nil
}

// Delete removes a transaction from the owner's collection. Deleting an
// absent id fails with ErrTransactionNotFound rather than succeeding quietly.
func (s *TransactionService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}

	if err := s.txns.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrTransactionNotFound
		}
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (s *TransactionService) checkUser(ctx context.Context, userID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}
	return nil
}

// validateInput applies the shared create/update rules in contract order and
// normalizes the input in place: type and method lowercased, text fields
// trimmed.
func validateInput(input *TransactionInput) error {
	input.Type = strings.ToLower(input.Type)
	if input.Type != domain.TypeDebit && input.Type != domain.TypeCredit {
		return fmt.Errorf(`%w: type must be "debit" or "credit"`, domain.ErrInvalidInput)
	}

	if input.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than 0", domain.ErrInvalidInput)
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	input.Category = strings.TrimSpace(input.Category)
	if input.Category == "" {
		return fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	}

	if !datePattern.MatchString(input.Date) {
		return fmt.Errorf("%w: date is required (YYYY-MM-DD)", domain.ErrInvalidInput)
	}

	input.Method = strings.ToLower(input.Method)
	if !slices.Contains(domain.PaymentMethods, input.Method) {
		return fmt.Errorf(`%w: method must be "upi", "card", "cash", or "net banking"`, domain.ErrInvalidInput)
	}

	input.Comments = strings.TrimSpace(input.Comments)
	return nil
}

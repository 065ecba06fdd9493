package handler

import (
	"github.com/msomdec/spendsmarter-api/internal/domain"
)

// UserDTO is the JSON representation of a user's public fields. The stored
// credential is never part of a response.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	DOB   string `json:"dob,omitempty"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		DOB:   u.DOB,
	}
}

// TransactionDTO is the JSON representation of a transaction.
type TransactionDTO struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Method   string  `json:"method"`
	Comments string  `json:"comments,omitempty"`
}

func toTransactionDTO(t *domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:       t.ID,
		Type:     t.Type,
		Amount:   t.Amount,
		Name:     t.Name,
		Category: t.Category,
		Date:     t.Date,
		Method:   t.Method,
		Comments: t.Comments,
	}
}

func toTransactionDTOs(txns []domain.Transaction) []TransactionDTO {
	dtos := make([]TransactionDTO, len(txns))
	for i := range txns {
		dtos[i] = toTransactionDTO(&txns[i])
	}
	return dtos
}

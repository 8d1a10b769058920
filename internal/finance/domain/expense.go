package domain

import (
	"strings"
	"time"

	"github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

type ExpenseRepository interface {
	Save(expense Expense) error
	FindByUser(userID string) ([]Expense, error)
	DeleteByID(id string) error
	// UpdateAmount replaces only the amount field and returns the updated record.
	UpdateAmount(id string, amount float64) (*Expense, error)
}

type Expense struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e *Expense) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return errors.NewValidationError("Title is required")
	}
	if e.Amount <= 0 {
		return errors.NewValidationError("Amount must be a positive number")
	}
	if strings.TrimSpace(e.Category) == "" {
		return errors.NewValidationError("Category is required")
	}
	if e.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	if e.UserID == "" {
		return errors.NewValidationError("User ID is required")
	}
	return nil
}

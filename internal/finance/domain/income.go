package domain

import (
	"strings"
	"time"

	"github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

type IncomeRepository interface {
	Save(income Income) error
	FindByUser(userID string) ([]Income, error)
	DeleteByID(id string) error
}

type Income struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (i *Income) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return errors.NewValidationError("Title is required")
	}
	if i.Amount <= 0 {
		return errors.NewValidationError("Amount must be a positive number")
	}
	if strings.TrimSpace(i.Category) == "" {
		return errors.NewValidationError("Category is required")
	}
	if i.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	if i.UserID == "" {
		return errors.NewValidationError("User ID is required")
	}
	return nil
}

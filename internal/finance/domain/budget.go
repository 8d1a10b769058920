package domain

import (
	"strings"
	"time"

	"github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

type BudgetRepository interface {
	Save(budget Budget) error
	FindByUser(userID string) ([]Budget, error)
	DeleteByID(id string) error
}

// Budget caps spending for one category; Name is the category key
// expense records are matched against.
type Budget struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b *Budget) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return errors.NewValidationError("Name is required")
	}
	// Zero-amount budgets would make the spent/amount ratio undefined.
	if b.Amount <= 0 {
		return errors.NewValidationError("Amount must be a positive number")
	}
	if b.UserID == "" {
		return errors.NewValidationError("User ID is required")
	}
	return nil
}

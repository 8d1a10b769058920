package infrastructure

import (
	"database/sql"

	"github.com/pkarczmarek/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Save(budget domain.Budget) error {
	_, err := r.db.Exec(
		`INSERT INTO budgets (id, name, amount, user_id, created_at)
        VALUES ($1, $2, $3, $4, $5)`,
		budget.ID, budget.Name, budget.Amount, budget.UserID, budget.CreatedAt,
	)
	return err
}

func (r *BudgetRepository) FindByUser(userID string) ([]domain.Budget, error) {
	rows, err := r.db.Query(
		`SELECT id, name, amount, user_id, created_at
        FROM budgets WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var budget domain.Budget
		if err := rows.Scan(&budget.ID, &budget.Name, &budget.Amount, &budget.UserID, &budget.CreatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

func (r *BudgetRepository) DeleteByID(id string) error {
	result, err := r.db.Exec(`DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrBudgetNotFound
	}
	return nil
}

package infrastructure

import (
	"database/sql"

	"github.com/pkarczmarek/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

type IncomeRepository struct {
	db *sql.DB
}

func NewIncomeRepository(db *sql.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

func (r *IncomeRepository) Save(income domain.Income) error {
	_, err := r.db.Exec(
		`INSERT INTO incomes (id, title, amount, category, date, user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		income.ID, income.Title, income.Amount, income.Category, income.Date, income.UserID, income.CreatedAt,
	)
	return err
}

func (r *IncomeRepository) FindByUser(userID string) ([]domain.Income, error) {
	rows, err := r.db.Query(
		`SELECT id, title, amount, category, date, user_id, created_at
        FROM incomes WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []domain.Income
	for rows.Next() {
		var income domain.Income
		if err := rows.Scan(&income.ID, &income.Title, &income.Amount, &income.Category,
			&income.Date, &income.UserID, &income.CreatedAt); err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}
	return incomes, rows.Err()
}

func (r *IncomeRepository) DeleteByID(id string) error {
	result, err := r.db.Exec(`DELETE FROM incomes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrIncomeNotFound
	}
	return nil
}

package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/pkarczmarek/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Save(expense domain.Expense) error {
	_, err := r.db.Exec(
		`INSERT INTO expenses (id, title, amount, category, date, user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		expense.ID, expense.Title, expense.Amount, expense.Category, expense.Date, expense.UserID, expense.CreatedAt,
	)
	return err
}

func (r *ExpenseRepository) FindByUser(userID string) ([]domain.Expense, error) {
	rows, err := r.db.Query(
		`SELECT id, title, amount, category, date, user_id, created_at
        FROM expenses WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(&expense.ID, &expense.Title, &expense.Amount, &expense.Category,
			&expense.Date, &expense.UserID, &expense.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) DeleteByID(id string) error {
	result, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) UpdateAmount(id string, amount float64) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.QueryRow(
		`UPDATE expenses SET amount = $2 WHERE id = $1
        RETURNING id, title, amount, category, date, user_id, created_at`,
		id, amount,
	).Scan(&expense.ID, &expense.Title, &expense.Amount, &expense.Category,
		&expense.Date, &expense.UserID, &expense.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrExpenseNotFound
		}
		return nil, err
	}
	return &expense, nil
}

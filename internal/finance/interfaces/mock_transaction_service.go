package interfaces

import (
	"fmt"
	"time"

	"github.com/pkarczmarek/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

// MockTransactionService mirrors the service contract in memory so handler
// tests can exercise status-code mapping without a database.
type MockTransactionService struct {
	Incomes  []domain.Income
	Expenses []domain.Expense
	Budgets  []domain.Budget
	Err      error
}

func (m *MockTransactionService) AddIncome(income *domain.Income) error {
	if m.Err != nil {
		return m.Err
	}
	income.ID = fmt.Sprintf("income-%d", len(m.Incomes)+1)
	income.CreatedAt = time.Now().UTC()
	if err := income.Validate(); err != nil {
		return err
	}
	m.Incomes = append(m.Incomes, *income)
	return nil
}

func (m *MockTransactionService) AddExpense(expense *domain.Expense) error {
	if m.Err != nil {
		return m.Err
	}
	expense.ID = fmt.Sprintf("expense-%d", len(m.Expenses)+1)
	expense.CreatedAt = time.Now().UTC()
	if err := expense.Validate(); err != nil {
		return err
	}
	m.Expenses = append(m.Expenses, *expense)
	return nil
}

func (m *MockTransactionService) AddBudget(budget *domain.Budget) error {
	if m.Err != nil {
		return m.Err
	}
	budget.ID = fmt.Sprintf("budget-%d", len(m.Budgets)+1)
	budget.CreatedAt = time.Now().UTC()
	if err := budget.Validate(); err != nil {
		return err
	}
	m.Budgets = append(m.Budgets, *budget)
	return nil
}

func (m *MockTransactionService) ListIncomes(userID string) ([]domain.Income, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if userID == "" {
		return nil, financeErrors.NewValidationError("User ID is required")
	}
	incomes := []domain.Income{}
	for _, income := range m.Incomes {
		if income.UserID == userID {
			incomes = append(incomes, income)
		}
	}
	return incomes, nil
}

func (m *MockTransactionService) ListExpenses(userID string) ([]domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if userID == "" {
		return nil, financeErrors.NewValidationError("User ID is required")
	}
	expenses := []domain.Expense{}
	for _, expense := range m.Expenses {
		if expense.UserID == userID {
			expenses = append(expenses, expense)
		}
	}
	return expenses, nil
}

func (m *MockTransactionService) ListBudgets(userID string) ([]domain.Budget, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if userID == "" {
		return nil, financeErrors.NewValidationError("User ID is required")
	}
	budgets := []domain.Budget{}
	for _, budget := range m.Budgets {
		if budget.UserID == userID {
			budgets = append(budgets, budget)
		}
	}
	return budgets, nil
}

func (m *MockTransactionService) DeleteIncome(id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i, income := range m.Incomes {
		if income.ID == id {
			m.Incomes = append(m.Incomes[:i], m.Incomes[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrIncomeNotFound
}

func (m *MockTransactionService) DeleteExpense(id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i, expense := range m.Expenses {
		if expense.ID == id {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrExpenseNotFound
}

func (m *MockTransactionService) DeleteBudget(id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i, budget := range m.Budgets {
		if budget.ID == id {
			m.Budgets = append(m.Budgets[:i], m.Budgets[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrBudgetNotFound
}

func (m *MockTransactionService) EditExpenseAmount(id string, amount float64) (*domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Expenses {
		if m.Expenses[i].ID == id {
			m.Expenses[i].Amount = amount
			updated := m.Expenses[i]
			return &updated, nil
		}
	}
	return nil, financeErrors.ErrExpenseNotFound
}

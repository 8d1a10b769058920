package infrastructure

import (
	"sort"

	"github.com/pkarczmarek/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

// In-memory repositories for service and handler tests.

type MockIncomeRepository struct {
	Incomes []domain.Income
	SaveErr error
	FindErr error
}

func (m *MockIncomeRepository) Save(income domain.Income) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Incomes = append(m.Incomes, income)
	return nil
}

func (m *MockIncomeRepository) FindByUser(userID string) ([]domain.Income, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var incomes []domain.Income
	for _, income := range m.Incomes {
		if income.UserID == userID {
			incomes = append(incomes, income)
		}
	}
	sort.SliceStable(incomes, func(i, j int) bool {
		return incomes[i].CreatedAt.After(incomes[j].CreatedAt)
	})
	return incomes, nil
}

func (m *MockIncomeRepository) DeleteByID(id string) error {
	for i, income := range m.Incomes {
		if income.ID == id {
			m.Incomes = append(m.Incomes[:i], m.Incomes[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrIncomeNotFound
}

type MockExpenseRepository struct {
	Expenses []domain.Expense
	SaveErr  error
	FindErr  error
}

func (m *MockExpenseRepository) Save(expense domain.Expense) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Expenses = append(m.Expenses, expense)
	return nil
}

func (m *MockExpenseRepository) FindByUser(userID string) ([]domain.Expense, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var expenses []domain.Expense
	for _, expense := range m.Expenses {
		if expense.UserID == userID {
			expenses = append(expenses, expense)
		}
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})
	return expenses, nil
}

func (m *MockExpenseRepository) DeleteByID(id string) error {
	for i, expense := range m.Expenses {
		if expense.ID == id {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrExpenseNotFound
}

func (m *MockExpenseRepository) UpdateAmount(id string, amount float64) (*domain.Expense, error) {
	for i := range m.Expenses {
		if m.Expenses[i].ID == id {
			m.Expenses[i].Amount = amount
			updated := m.Expenses[i]
			return &updated, nil
		}
	}
	return nil, financeErrors.ErrExpenseNotFound
}

type MockBudgetRepository struct {
	Budgets []domain.Budget
	SaveErr error
	FindErr error
}

func (m *MockBudgetRepository) Save(budget domain.Budget) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Budgets = append(m.Budgets, budget)
	return nil
}

func (m *MockBudgetRepository) FindByUser(userID string) ([]domain.Budget, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var budgets []domain.Budget
	for _, budget := range m.Budgets {
		if budget.UserID == userID {
			budgets = append(budgets, budget)
		}
	}
	sort.SliceStable(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.After(budgets[j].CreatedAt)
	})
	return budgets, nil
}

func (m *MockBudgetRepository) DeleteByID(id string) error {
	for i, budget := range m.Budgets {
		if budget.ID == id {
			m.Budgets = append(m.Budgets[:i], m.Budgets[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrBudgetNotFound
}

package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkarczmarek/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

type TransactionService struct {
	incomes  domain.IncomeRepository
	expenses domain.ExpenseRepository
	budgets  domain.BudgetRepository
}

func NewTransactionService(incomes domain.IncomeRepository, expenses domain.ExpenseRepository, budgets domain.BudgetRepository) *TransactionService {
	return &TransactionService{incomes: incomes, expenses: expenses, budgets: budgets}
}

func (s *TransactionService) AddIncome(income *domain.Income) error {
	income.ID = uuid.NewString()
	income.CreatedAt = time.Now().UTC()
	if err := income.Validate(); err != nil {
		return err
	}
	if err := s.incomes.Save(*income); err != nil {
		return financeErrors.NewStoreError("could not save income", err)
	}
	return nil
}

func (s *TransactionService) AddExpense(expense *domain.Expense) error {
	expense.ID = uuid.NewString()
	expense.CreatedAt = time.Now().UTC()
	if err := expense.Validate(); err != nil {
		return err
	}
	if err := s.expenses.Save(*expense); err != nil {
		return financeErrors.NewStoreError("could not save expense", err)
	}
	return nil
}

func (s *TransactionService) AddBudget(budget *domain.Budget) error {
	budget.ID = uuid.NewString()
	budget.CreatedAt = time.Now().UTC()
	if err := budget.Validate(); err != nil {
		return err
	}
	if err := s.budgets.Save(*budget); err != nil {
		return financeErrors.NewStoreError("could not save budget", err)
	}
	return nil
}

// List operations reject an empty user id instead of passing an empty
// equality filter to the store, so "match none" is enforced explicitly.

func (s *TransactionService) ListIncomes(userID string) ([]domain.Income, error) {
	if userID == "" {
		return nil, financeErrors.NewValidationError("User ID is required")
	}
	incomes, err := s.incomes.FindByUser(userID)
	if err != nil {
		return nil, financeErrors.NewStoreError("could not list incomes", err)
	}
	if incomes == nil {
		return []domain.Income{}, nil
	}
	return incomes, nil
}

func (s *TransactionService) ListExpenses(userID string) ([]domain.Expense, error) {
	if userID == "" {
		return nil, financeErrors.NewValidationError("User ID is required")
	}
	expenses, err := s.expenses.FindByUser(userID)
	if err != nil {
		return nil, financeErrors.NewStoreError("could not list expenses", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *TransactionService) ListBudgets(userID string) ([]domain.Budget, error) {
	if userID == "" {
		return nil, financeErrors.NewValidationError("User ID is required")
	}
	budgets, err := s.budgets.FindByUser(userID)
	if err != nil {
		return nil, financeErrors.NewStoreError("could not list budgets", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *TransactionService) DeleteIncome(id string) error {
	return s.incomes.DeleteByID(id)
}

func (s *TransactionService) DeleteExpense(id string) error {
	return s.expenses.DeleteByID(id)
}

func (s *TransactionService) DeleteBudget(id string) error {
	return s.budgets.DeleteByID(id)
}

// EditExpenseAmount replaces only the amount field. Unlike creation, the new
// amount is not checked for positivity.
func (s *TransactionService) EditExpenseAmount(id string, amount float64) (*domain.Expense, error) {
	return s.expenses.UpdateAmount(id, amount)
}

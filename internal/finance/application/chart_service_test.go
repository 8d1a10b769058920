package application

import (
	"testing"
	"time"

	"github.com/pkarczmarek/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
	"github.com/pkarczmarek/FinanceTracker/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
)

func newChartTestService() (*ChartService, *infrastructure.MockIncomeRepository, *infrastructure.MockExpenseRepository, *infrastructure.MockBudgetRepository) {
	incomes := &infrastructure.MockIncomeRepository{}
	expenses := &infrastructure.MockExpenseRepository{}
	budgets := &infrastructure.MockBudgetRepository{}
	return NewChartService(incomes, expenses, budgets), incomes, expenses, budgets
}

func TestGetChartData_IncomeLabelsAreDates(t *testing.T) {
	service, incomes, _, _ := newChartTestService()
	incomes.Incomes = []domain.Income{
		{ID: "i1", Amount: 100, Date: time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), UserID: "user-1", CreatedAt: time.Now()},
		{ID: "i2", Amount: 250, Date: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), UserID: "user-1", CreatedAt: time.Now().Add(-time.Hour)},
	}

	chartData, err := service.GetChartData("income", []string{"amount"}, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"2024-05-02", "2024-05-01"}, chartData.Labels)
	assert.Equal(t, []float64{100, 250}, chartData.IncomeData)
	assert.Empty(t, chartData.ExpenseData)
	assert.Empty(t, chartData.BudgetData)
}

func TestGetChartData_BudgetLabelsAreNames(t *testing.T) {
	service, _, _, budgets := newChartTestService()
	budgets.Budgets = []domain.Budget{
		{ID: "b1", Name: "Food", Amount: 100, UserID: "user-1"},
		{ID: "b2", Name: "Rent", Amount: 900, UserID: "user-1"},
	}

	chartData, err := service.GetChartData("budget", []string{"amount"}, "user-1")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Food", "Rent"}, chartData.Labels)
	assert.ElementsMatch(t, []float64{100, 900}, chartData.BudgetData)
}

func TestGetChartData_AmountAttributeRequiredForValues(t *testing.T) {
	service, _, expenses, _ := newChartTestService()
	expenses.Expenses = []domain.Expense{
		{ID: "e1", Amount: 30, Date: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), UserID: "user-1"},
	}

	chartData, err := service.GetChartData("expense", []string{"category"}, "user-1")
	assert.NoError(t, err)
	assert.Len(t, chartData.Labels, 1)
	assert.Empty(t, chartData.ExpenseData)
}

func TestGetChartData_InvalidType(t *testing.T) {
	service, _, _, _ := newChartTestService()

	_, err := service.GetChartData("savings", []string{"amount"}, "user-1")
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestGetChartData_EmptyUserID(t *testing.T) {
	service, _, _, _ := newChartTestService()

	_, err := service.GetChartData("income", []string{"amount"}, "")
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestGetReportData_ExpenseSums(t *testing.T) {
	service, _, expenses, _ := newChartTestService()
	expenses.Expenses = []domain.Expense{
		{ID: "e1", Amount: 40, Category: "Food", UserID: "user-1"},
		{ID: "e2", Amount: 45, Category: "Food", UserID: "user-1"},
		{ID: "e3", Amount: 99, Category: "Food", UserID: "user-2"},
	}

	report, err := service.GetReportData("expense", []string{"Food", "Rent"}, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Food", "Rent"}, report.Labels)
	assert.Equal(t, []float64{85, 0}, report.Values)
}

func TestGetReportData_BudgetLookup(t *testing.T) {
	service, _, _, budgets := newChartTestService()
	budgets.Budgets = []domain.Budget{
		{ID: "b1", Name: "Food", Amount: 100, UserID: "user-1"},
	}

	report, err := service.GetReportData("budget", []string{"Food", "Travel"}, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, []float64{100, 0}, report.Values)
}

func TestGetReportData_InvalidType(t *testing.T) {
	service, _, _, _ := newChartTestService()

	_, err := service.GetReportData("savings", []string{"Food"}, "user-1")
	assert.True(t, financeErrors.IsValidationError(err))
}

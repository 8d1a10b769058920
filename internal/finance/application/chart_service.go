package application

import (
	"github.com/pkarczmarek/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

const dateLabelFormat = "2006-01-02"

// ChartData is the dataset the dashboard charts render from. Only the array
// matching the requested type is filled; the others stay empty.
type ChartData struct {
	Labels      []string  `json:"labels"`
	IncomeData  []float64 `json:"incomeData"`
	ExpenseData []float64 `json:"expenseData"`
	BudgetData  []float64 `json:"budgetData"`
}

type ChartService struct {
	incomes  domain.IncomeRepository
	expenses domain.ExpenseRepository
	budgets  domain.BudgetRepository
}

func NewChartService(incomes domain.IncomeRepository, expenses domain.ExpenseRepository, budgets domain.BudgetRepository) *ChartService {
	return &ChartService{incomes: incomes, expenses: expenses, budgets: budgets}
}

func hasAttribute(attributes []string, name string) bool {
	for _, attribute := range attributes {
		if attribute == name {
			return true
		}
	}
	return false
}

// GetChartData labels income/expense points by date and budget points by
// name; values are included only when "amount" is among the requested
// attributes.
func (s *ChartService) GetChartData(kind string, attributes []string, userID string) (*ChartData, error) {
	if userID == "" {
		return nil, financeErrors.NewValidationError("User ID is required")
	}

	chartData := &ChartData{
		Labels:      []string{},
		IncomeData:  []float64{},
		ExpenseData: []float64{},
		BudgetData:  []float64{},
	}
	wantAmount := hasAttribute(attributes, "amount")

	switch kind {
	case "income":
		incomes, err := s.incomes.FindByUser(userID)
		if err != nil {
			return nil, financeErrors.NewStoreError("could not fetch incomes", err)
		}
		for _, income := range incomes {
			chartData.Labels = append(chartData.Labels, income.Date.Format(dateLabelFormat))
			if wantAmount {
				chartData.IncomeData = append(chartData.IncomeData, income.Amount)
			}
		}
	case "expense":
		expenses, err := s.expenses.FindByUser(userID)
		if err != nil {
			return nil, financeErrors.NewStoreError("could not fetch expenses", err)
		}
		for _, expense := range expenses {
			chartData.Labels = append(chartData.Labels, expense.Date.Format(dateLabelFormat))
			if wantAmount {
				chartData.ExpenseData = append(chartData.ExpenseData, expense.Amount)
			}
		}
	case "budget":
		budgets, err := s.budgets.FindByUser(userID)
		if err != nil {
			return nil, financeErrors.NewStoreError("could not fetch budgets", err)
		}
		for _, budget := range budgets {
			chartData.Labels = append(chartData.Labels, budget.Name)
			if wantAmount {
				chartData.BudgetData = append(chartData.BudgetData, budget.Amount)
			}
		}
	default:
		return nil, financeErrors.NewValidationError("Invalid chart type")
	}

	return chartData, nil
}

// GetReportData sums the user's records per requested category, keeping the
// category order of the request.
func (s *ChartService) GetReportData(kind string, categories []string, userID string) (*Report, error) {
	if userID == "" {
		return nil, financeErrors.NewValidationError("User ID is required")
	}

	var report Report
	switch kind {
	case "income":
		incomes, err := s.incomes.FindByUser(userID)
		if err != nil {
			return nil, financeErrors.NewStoreError("could not fetch incomes", err)
		}
		report = BuildIncomeReport(incomes, categories)
	case "expense":
		expenses, err := s.expenses.FindByUser(userID)
		if err != nil {
			return nil, financeErrors.NewStoreError("could not fetch expenses", err)
		}
		report = BuildExpenseReport(expenses, categories)
	case "budget":
		budgets, err := s.budgets.FindByUser(userID)
		if err != nil {
			return nil, financeErrors.NewStoreError("could not fetch budgets", err)
		}
		report = BuildBudgetReport(budgets, categories)
	default:
		return nil, financeErrors.NewValidationError("Invalid report type")
	}

	return &report, nil
}

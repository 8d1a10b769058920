package application

import (
	"github.com/pkarczmarek/FinanceTracker/internal/finance/domain"
)

// Aggregations are pure functions over already-fetched records; every view
// re-derives its numbers from the full collection the caller holds.

func TotalIncome(incomes []domain.Income) float64 {
	var total float64
	for _, income := range incomes {
		total += income.Amount
	}
	return total
}

func TotalExpenses(expenses []domain.Expense) float64 {
	var total float64
	for _, expense := range expenses {
		total += expense.Amount
	}
	return total
}

// TotalBalance may be negative when expenses exceed income.
func TotalBalance(incomes []domain.Income, expenses []domain.Expense) float64 {
	return TotalIncome(incomes) - TotalExpenses(expenses)
}

// SpentByCategory sums expense amounts whose category matches exactly
// (case-sensitive).
func SpentByCategory(expenses []domain.Expense, category string) float64 {
	var total float64
	for _, expense := range expenses {
		if expense.Category == category {
			total += expense.Amount
		}
	}
	return total
}

const overBudgetThreshold = 0.8

type BudgetStatus struct {
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	OverBudget bool    `json:"overBudget"`
}

// StatusForBudget matches expenses against the budget name. A non-positive
// budget amount is always reported as over budget; creation rejects such
// budgets, but records written before that rule may still exist.
func StatusForBudget(budget domain.Budget, expenses []domain.Expense) BudgetStatus {
	spent := SpentByCategory(expenses, budget.Name)
	status := BudgetStatus{
		Spent:     spent,
		Remaining: budget.Amount - spent,
	}
	if budget.Amount <= 0 {
		status.OverBudget = true
		return status
	}
	status.OverBudget = spent/budget.Amount > overBudgetThreshold
	return status
}

// Report holds parallel label/value arrays suitable for chart rendering.
// Labels keep the order of the requested categories.
type Report struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

func BuildIncomeReport(incomes []domain.Income, categories []string) Report {
	report := Report{Labels: []string{}, Values: []float64{}}
	for _, category := range categories {
		var total float64
		for _, income := range incomes {
			if income.Category == category {
				total += income.Amount
			}
		}
		report.Labels = append(report.Labels, category)
		report.Values = append(report.Values, total)
	}
	return report
}

func BuildExpenseReport(expenses []domain.Expense, categories []string) Report {
	report := Report{Labels: []string{}, Values: []float64{}}
	for _, category := range categories {
		report.Labels = append(report.Labels, category)
		report.Values = append(report.Values, SpentByCategory(expenses, category))
	}
	return report
}

// BuildBudgetReport takes each category's single matching budget amount,
// 0 when no budget carries that name.
func BuildBudgetReport(budgets []domain.Budget, categories []string) Report {
	report := Report{Labels: []string{}, Values: []float64{}}
	for _, category := range categories {
		var amount float64
		for _, budget := range budgets {
			if budget.Name == category {
				amount = budget.Amount
				break
			}
		}
		report.Labels = append(report.Labels, category)
		report.Values = append(report.Values, amount)
	}
	return report
}

func IncomeCategories(incomes []domain.Income) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, income := range incomes {
		if !seen[income.Category] {
			seen[income.Category] = true
			categories = append(categories, income.Category)
		}
	}
	return categories
}

func ExpenseCategories(expenses []domain.Expense) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, expense := range expenses {
		if !seen[expense.Category] {
			seen[expense.Category] = true
			categories = append(categories, expense.Category)
		}
	}
	return categories
}

func BudgetNames(budgets []domain.Budget) []string {
	seen := make(map[string]bool)
	var names []string
	for _, budget := range budgets {
		if !seen[budget.Name] {
			seen[budget.Name] = true
			names = append(names, budget.Name)
		}
	}
	return names
}

package interfaces

import (
	"github.com/pkarczmarek/FinanceTracker/internal/finance/application"
	financeErrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

type MockChartService struct {
	ChartData *application.ChartData
	Report    *application.Report
	Err       error
}

func (m *MockChartService) GetChartData(kind string, attributes []string, userID string) (*application.ChartData, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if userID == "" {
		return nil, financeErrors.NewValidationError("User ID is required")
	}
	if kind != "income" && kind != "expense" && kind != "budget" {
		return nil, financeErrors.NewValidationError("Invalid chart type")
	}
	return m.ChartData, nil
}

func (m *MockChartService) GetReportData(kind string, categories []string, userID string) (*application.Report, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if userID == "" {
		return nil, financeErrors.NewValidationError("User ID is required")
	}
	if kind != "income" && kind != "expense" && kind != "budget" {
		return nil, financeErrors.NewValidationError("Invalid report type")
	}
	return m.Report, nil
}

package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkarczmarek/FinanceTracker/internal/finance/application"
	"github.com/stretchr/testify/assert"
)

func newChartServer(service ChartServiceInterface) *http.ServeMux {
	handler := NewChartHandler(service, respondJSON, respondError)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /chart-data", handler.GetChartData)
	mux.HandleFunc("GET /report-data", handler.GetReportData)
	return mux
}

func TestGetChartData_InvalidType(t *testing.T) {
	mux := newChartServer(&MockChartService{})

	req := httptest.NewRequest(http.MethodGet, "/chart-data?type=savings&attributes=amount&userId=user-1", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestGetChartData_MissingUserID(t *testing.T) {
	mux := newChartServer(&MockChartService{})

	req := httptest.NewRequest(http.MethodGet, "/chart-data?type=income&attributes=amount", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestGetChartData_ReturnsPayload(t *testing.T) {
	service := &MockChartService{
		ChartData: &application.ChartData{
			Labels:      []string{"2024-05-01", "2024-05-02"},
			IncomeData:  []float64{100, 200},
			ExpenseData: []float64{},
			BudgetData:  []float64{},
		},
	}
	mux := newChartServer(service)

	req := httptest.NewRequest(http.MethodGet, "/chart-data?type=income&attributes=amount&userId=user-1", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var chartData application.ChartData
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&chartData))
	assert.Equal(t, []string{"2024-05-01", "2024-05-02"}, chartData.Labels)
	assert.Equal(t, []float64{100, 200}, chartData.IncomeData)
	assert.Empty(t, chartData.ExpenseData)
	assert.Empty(t, chartData.BudgetData)
}

func TestGetReportData_ReturnsParallelArrays(t *testing.T) {
	service := &MockChartService{
		Report: &application.Report{
			Labels: []string{"Food", "Rent"},
			Values: []float64{85, 0},
		},
	}
	mux := newChartServer(service)

	req := httptest.NewRequest(http.MethodGet, "/report-data?type=expense&categories=Food,Rent&userId=user-1", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var report application.Report
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&report))
	assert.Equal(t, []string{"Food", "Rent"}, report.Labels)
	assert.Equal(t, []float64{85, 0}, report.Values)
}

package interfaces

import (
	"log"
	"net/http"
	"strings"

	"github.com/pkarczmarek/FinanceTracker/internal/finance/application"
	financeErrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

type ChartServiceInterface interface {
	GetChartData(kind string, attributes []string, userID string) (*application.ChartData, error)
	GetReportData(kind string, categories []string, userID string) (*application.Report, error)
}

type ChartHandler struct {
	service      ChartServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewChartHandler(
	service ChartServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *ChartHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &ChartHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func splitCommaList(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}

func (h *ChartHandler) GetChartData(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	attributes := splitCommaList(r.URL.Query().Get("attributes"))
	userID := r.URL.Query().Get("userId")

	chartData, err := h.service.GetChartData(kind, attributes, userID)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Failed to build chart data: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve chart data")
		return
	}
	h.respondJSON(w, http.StatusOK, chartData)
}

func (h *ChartHandler) GetReportData(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	categories := splitCommaList(r.URL.Query().Get("categories"))
	userID := r.URL.Query().Get("userId")

	report, err := h.service.GetReportData(kind, categories, userID)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Failed to build report data: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve report data")
		return
	}
	h.respondJSON(w, http.StatusOK, report)
}

package interfaces

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/pkarczmarek/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

type TransactionServiceInterface interface {
	AddIncome(income *domain.Income) error
	AddExpense(expense *domain.Expense) error
	AddBudget(budget *domain.Budget) error
	ListIncomes(userID string) ([]domain.Income, error)
	ListExpenses(userID string) ([]domain.Expense, error)
	ListBudgets(userID string) ([]domain.Budget, error)
	DeleteIncome(id string) error
	DeleteExpense(id string) error
	DeleteBudget(id string) error
	EditExpenseAmount(id string, amount float64) (*domain.Expense, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type transactionRequest struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	UserID   string  `json:"userId"`
}

// parseDate accepts both plain dates and full RFC 3339 timestamps, which is
// what date pickers and API clients send respectively.
func parseDate(value string) (time.Time, bool) {
	if date, err := time.Parse("2006-01-02", value); err == nil {
		return date, true
	}
	if date, err := time.Parse(time.RFC3339, value); err == nil {
		return date, true
	}
	return time.Time{}, false
}

func (h *TransactionHandler) respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case financeErrors.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsNotFoundError(err):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("%s: %v", fallback, err)
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}

func (h *TransactionHandler) AddIncome(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Date == "" {
		h.respondError(w, http.StatusBadRequest, "Date is required")
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	income := domain.Income{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     date,
		UserID:   req.UserID,
	}
	if err := h.service.AddIncome(&income); err != nil {
		h.respondServiceError(w, err, "Failed to add income")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Income Added",
		"data":    income,
	})
}

func (h *TransactionHandler) GetIncomes(w http.ResponseWriter, r *http.Request) {
	incomes, err := h.service.ListIncomes(r.URL.Query().Get("userId"))
	if err != nil {
		h.respondServiceError(w, err, "Failed to retrieve incomes")
		return
	}
	h.respondJSON(w, http.StatusOK, incomes)
}

func (h *TransactionHandler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteIncome(r.PathValue("id")); err != nil {
		h.respondServiceError(w, err, "Failed to delete income")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Income Deleted"})
}

func (h *TransactionHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Date == "" {
		h.respondError(w, http.StatusBadRequest, "Date is required")
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	expense := domain.Expense{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     date,
		UserID:   req.UserID,
	}
	if err := h.service.AddExpense(&expense); err != nil {
		h.respondServiceError(w, err, "Failed to add expense")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Expense Added",
		"data":    expense,
	})
}

func (h *TransactionHandler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.ListExpenses(r.URL.Query().Get("userId"))
	if err != nil {
		h.respondServiceError(w, err, "Failed to retrieve expenses")
		return
	}
	h.respondJSON(w, http.StatusOK, expenses)
}

func (h *TransactionHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteExpense(r.PathValue("id")); err != nil {
		h.respondServiceError(w, err, "Failed to delete expense")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Expense Deleted"})
}

func (h *TransactionHandler) EditExpense(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense, err := h.service.EditExpenseAmount(r.PathValue("id"), req.Amount)
	if err != nil {
		h.respondServiceError(w, err, "Failed to edit expense")
		return
	}
	h.respondJSON(w, http.StatusOK, expense)
}

func (h *TransactionHandler) AddBudget(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		UserID string  `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	budget := domain.Budget{
		Name:   req.Name,
		Amount: req.Amount,
		UserID: req.UserID,
	}
	if err := h.service.AddBudget(&budget); err != nil {
		h.respondServiceError(w, err, "Failed to add budget")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Budget added successfully",
		"data":    budget,
	})
}

func (h *TransactionHandler) GetBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.service.ListBudgets(r.URL.Query().Get("userId"))
	if err != nil {
		h.respondServiceError(w, err, "Failed to retrieve budgets")
		return
	}
	h.respondJSON(w, http.StatusOK, budgets)
}

func (h *TransactionHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBudget(r.PathValue("id")); err != nil {
		h.respondServiceError(w, err, "Failed to delete budget")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Budget deleted successfully"})
}

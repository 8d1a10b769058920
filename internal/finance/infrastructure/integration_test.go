package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	database "github.com/pkarczmarek/FinanceTracker/db"
	"github.com/pkarczmarek/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
	"github.com/pkarczmarek/FinanceTracker/internal/user"
)

func setupTestDatabase(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("financetracker_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}

func TestPostgresRepositories(t *testing.T) {
	db := setupTestDatabase(t)

	incomeRepo := NewIncomeRepository(db)
	expenseRepo := NewExpenseRepository(db)
	budgetRepo := NewBudgetRepository(db)

	userID := uuid.NewString()
	otherUserID := uuid.NewString()

	t.Run("income save, list newest-first and delete", func(t *testing.T) {
		older := domain.Income{
			ID:        uuid.NewString(),
			Title:     "Salary",
			Amount:    4200,
			Category:  "Job",
			Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			UserID:    userID,
			CreatedAt: time.Now().UTC().Add(-time.Hour),
		}
		newer := domain.Income{
			ID:        uuid.NewString(),
			Title:     "Dividends",
			Amount:    150,
			Category:  "Investments",
			Date:      time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, incomeRepo.Save(older))
		require.NoError(t, incomeRepo.Save(newer))

		incomes, err := incomeRepo.FindByUser(userID)
		require.NoError(t, err)
		require.Len(t, incomes, 2)
		assert.Equal(t, newer.ID, incomes[0].ID)
		assert.Equal(t, older.ID, incomes[1].ID)

		other, err := incomeRepo.FindByUser(otherUserID)
		require.NoError(t, err)
		assert.Empty(t, other)

		require.NoError(t, incomeRepo.DeleteByID(older.ID))
		incomes, err = incomeRepo.FindByUser(userID)
		require.NoError(t, err)
		assert.Len(t, incomes, 1)

		err = incomeRepo.DeleteByID(uuid.NewString())
		assert.True(t, errors.Is(err, financeErrors.ErrIncomeNotFound))
	})

	t.Run("expense update amount", func(t *testing.T) {
		expense := domain.Expense{
			ID:        uuid.NewString(),
			Title:     "Groceries",
			Amount:    85,
			Category:  "Food",
			Date:      time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, expenseRepo.Save(expense))

		updated, err := expenseRepo.UpdateAmount(expense.ID, 92.5)
		require.NoError(t, err)
		assert.Equal(t, 92.5, updated.Amount)
		assert.Equal(t, "Groceries", updated.Title)
		assert.Equal(t, "Food", updated.Category)

		_, err = expenseRepo.UpdateAmount(uuid.NewString(), 10)
		assert.True(t, errors.Is(err, financeErrors.ErrExpenseNotFound))
	})

	t.Run("budget save and delete", func(t *testing.T) {
		budget := domain.Budget{
			ID:        uuid.NewString(),
			Name:      "Food",
			Amount:    300,
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, budgetRepo.Save(budget))

		budgets, err := budgetRepo.FindByUser(userID)
		require.NoError(t, err)
		require.Len(t, budgets, 1)
		assert.Equal(t, "Food", budgets[0].Name)

		require.NoError(t, budgetRepo.DeleteByID(budget.ID))
		err = budgetRepo.DeleteByID(budget.ID)
		assert.True(t, errors.Is(err, financeErrors.ErrBudgetNotFound))
	})
}

func TestPostgresUserFlow(t *testing.T) {
	db := setupTestDatabase(t)

	userService := user.NewUserService(user.NewUserRepository(db))

	created, err := userService.SignUp("Alice", "alice@example.com")
	require.NoError(t, err)
	assert.False(t, created.IsLoggedIn)

	_, err = userService.SignUp("Alice Clone", "alice@example.com")
	assert.True(t, errors.Is(err, user.ErrEmailAlreadyExists))

	signedIn, err := userService.SignIn("Alice")
	require.NoError(t, err)
	assert.True(t, signedIn.IsLoggedIn)
	assert.Equal(t, created.ID, signedIn.ID)

	_, err = userService.SignIn("Alice")
	assert.True(t, errors.Is(err, user.ErrAlreadyLoggedIn))

	_, err = userService.SignIn("Nobody")
	assert.True(t, errors.Is(err, user.ErrUserNotFound))

	users, err := userService.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, userService.DeleteUser(created.ID))
	err = userService.DeleteUser(created.ID)
	assert.True(t, errors.Is(err, user.ErrUserNotFound))
}

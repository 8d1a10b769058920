package user

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrUserNotFound = errors.New("user not found")

const pgUniqueViolation = "23505"

type Repository interface {
	createUser(user *User) error
	signInByName(name string) (*User, error)
	getAllUsers() ([]User, error)
	deleteByID(id string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{db: db}
}

// createUser relies on the unique index on email: two concurrent sign-ups
// for the same address cannot both commit.
func (r *userRepository) createUser(user *User) error {
	query := `
		INSERT INTO users (id, name, email, is_logged_in, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query, user.ID, user.Name, user.Email, user.IsLoggedIn, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("could not create user: %w", err)
	}
	return nil
}

// signInByName locks the user row, checks the flag and flips it in one
// transaction, so the check and the write commit as a single unit.
func (r *userRepository) signInByName(name string) (*User, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("could not begin sign-in transaction: %w", err)
	}

	query := `
		SELECT id, name, email, is_logged_in, created_at
		FROM users
		WHERE name = $1
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE
	`
	var user User
	err = tx.QueryRow(query, name).Scan(&user.ID, &user.Name, &user.Email, &user.IsLoggedIn, &user.CreatedAt)
	if err != nil {
		safeRollback(tx)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %w", err)
	}

	if user.IsLoggedIn {
		safeRollback(tx)
		return nil, ErrAlreadyLoggedIn
	}

	if _, err := tx.Exec(`UPDATE users SET is_logged_in = TRUE WHERE id = $1`, user.ID); err != nil {
		safeRollback(tx)
		return nil, fmt.Errorf("could not update sign-in flag: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit sign-in: %w", err)
	}

	user.IsLoggedIn = true
	return &user, nil
}

func (r *userRepository) getAllUsers() ([]User, error) {
	rows, err := r.db.Query(`SELECT id, name, email, is_logged_in, created_at FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.IsLoggedIn, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) deleteByID(id string) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func safeRollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("Error during transaction rollback: %v", err)
	}
}

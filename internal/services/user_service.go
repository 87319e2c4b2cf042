package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"asistanportal/internal/models"
)

// Timestamps are stored as TEXT in this layout, matching what the admin
// page and the CSV export show verbatim.
const timeLayout = "2006-01-02 15:04"

// Demo credentials seeded at bootstrap and restored by the admin reset.
const (
	adminUsername     = "admin"
	adminPassword     = "Admin!2345"
	assistantPassword = "Asistan!2345"
	assistantCount    = 10
)

var (
	// ErrBadCredentials covers both an unknown username and a wrong
	// password, so a login failure never reveals which accounts exist.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrValidation marks a rejected change-password form.
	ErrValidation = errors.New("validation failed")

	// ErrMissingFields and ErrPasswordMismatch narrow ErrValidation so the
	// handler can pick the right notice.
	ErrMissingFields    = fmt.Errorf("%w: all fields are required", ErrValidation)
	ErrPasswordMismatch = fmt.Errorf("%w: new passwords do not match", ErrValidation)
)

// UserServiceProvider defines the interface for account operations.
type UserServiceProvider interface {
	Authenticate(username, password string) (models.Identity, error)
	GetByID(id int) (models.User, error)
	ChangePassword(identity models.Identity, oldPassword, newPassword, confirmPassword string) error
	ResetDemoPasswords() error
	ListUsers() ([]models.User, error)
}

// UserService provides business logic for account management.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// SeedIfEmpty creates the demo accounts when the users table has no rows:
// one administrator and ten assistant accounts.
func (s *UserService) SeedIfEmpty() error {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := time.Now().Format(timeLayout)
	if err := s.insertUser(adminUsername, adminPassword, true, now); err != nil {
		return err
	}
	for i := 1; i <= assistantCount; i++ {
		username := fmt.Sprintf("asistan%02d", i)
		if err := s.insertUser(username, assistantPassword, false, now); err != nil {
			return err
		}
	}
	return nil
}

func (s *UserService) insertUser(username, password string, isAdmin bool, createdAt string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO users(username, pw_hash, is_admin, created_at) VALUES(?, ?, ?, ?)",
		username, string(hash), isAdmin, createdAt,
	)
	return err
}

// GetByID retrieves a single account by its id.
func (s *UserService) GetByID(id int) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, pw_hash, is_admin, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user with id %d not found", id)
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair and returns the caller's
// identity. Username matching is exact and case-sensitive.
func (s *UserService) Authenticate(username, password string) (models.Identity, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, pw_hash, is_admin, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Identity{}, ErrBadCredentials
		}
		return models.Identity{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.Identity{}, ErrBadCredentials
	}
	return user.Identity(), nil
}

// ChangePassword verifies the current password, checks the confirmation,
// then hashes and stores the new password. The old credential stops
// authenticating the moment the UPDATE lands.
func (s *UserService) ChangePassword(identity models.Identity, oldPassword, newPassword, confirmPassword string) error {
	if oldPassword == "" || newPassword == "" || confirmPassword == "" {
		return ErrMissingFields
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	var currentHash string
	row := s.db.QueryRow("SELECT pw_hash FROM users WHERE id = ?", identity.ID)
	if err := row.Scan(&currentHash); err != nil {
		return fmt.Errorf("could not find user to update password")
	}
	if bcrypt.CompareHashAndPassword([]byte(currentHash), []byte(oldPassword)) != nil {
		return ErrBadCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	_, err = s.db.Exec("UPDATE users SET pw_hash = ? WHERE id = ?", string(hash), identity.ID)
	return err
}

// ResetDemoPasswords restores the fixed demo account set to its default
// credentials. This intentionally bypasses the old-password check; the
// caller must have passed the admin gate.
func (s *UserService) ResetDemoPasswords() error {
	if err := s.resetPassword(adminUsername, adminPassword); err != nil {
		return err
	}
	for i := 1; i <= assistantCount; i++ {
		username := fmt.Sprintf("asistan%02d", i)
		if err := s.resetPassword(username, assistantPassword); err != nil {
			return err
		}
	}
	return nil
}

func (s *UserService) resetPassword(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	_, err = s.db.Exec("UPDATE users SET pw_hash = ? WHERE username = ?", string(hash), username)
	return err
}

// ListUsers returns all accounts sorted by username ascending.
func (s *UserService) ListUsers() ([]models.User, error) {
	rows, err := s.db.Query("SELECT id, username, is_admin, created_at FROM users ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

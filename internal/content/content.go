// Package content loads the case bank and the quiz bank from the data
// directory. Loading happens once at startup; the returned Store is
// immutable and safe for concurrent reads.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"asistanportal/internal/quiz"
)

// ErrCaseNotFound is returned for a case id that is not in the bank.
var ErrCaseNotFound = errors.New("case not found")

// Case is one clinical case from the case bank.
type Case struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
}

// Store holds all flat-file content, read once at startup.
type Store struct {
	Cases []Case
	Bank  quiz.Bank
}

type quizFile struct {
	Questions []quiz.Question `json:"questions"`
}

// Load reads vaka_bankasi.json and quiz.json from dataDir.
func Load(dataDir string) (*Store, error) {
	var cases []Case
	if err := readJSON(filepath.Join(dataDir, "vaka_bankasi.json"), &cases); err != nil {
		return nil, fmt.Errorf("load case bank: %w", err)
	}

	var qf quizFile
	if err := readJSON(filepath.Join(dataDir, "quiz.json"), &qf); err != nil {
		return nil, fmt.Errorf("load quiz bank: %w", err)
	}
	if len(qf.Questions) == 0 {
		return nil, errors.New("quiz bank is empty")
	}

	return &Store{Cases: cases, Bank: qf.Questions}, nil
}

// CaseByID looks a case up by id.
func (s *Store) CaseByID(id int) (Case, error) {
	for _, c := range s.Cases {
		if c.ID == id {
			return c, nil
		}
	}
	return Case{}, ErrCaseNotFound
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

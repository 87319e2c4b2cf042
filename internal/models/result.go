package models

// Result is one durable record of a completed quiz attempt.
// Rows are append-only: created once per submission, never updated.
type Result struct {
	ID      int
	UserID  int
	Score   int
	Details string
	TakenAt string
}

// ResultRow is a result joined with its owning account's username,
// as listed on the admin page and in the CSV export.
type ResultRow struct {
	TakenAt  string
	Username string
	Score    int
	Details  string
}

package models

// User represents an account row in the users table.
type User struct {
	ID           int
	Username     string
	PasswordHash string // Never expose this to the client
	IsAdmin      bool
	CreatedAt    string
}

// Identity is the authenticated caller for the duration of one request.
// It carries everything a handler needs to authorize an operation, so the
// session layer is consulted once per request and never inside services.
type Identity struct {
	ID       int
	Username string
	IsAdmin  bool
}

// Identity strips the credential hash off a user row.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}

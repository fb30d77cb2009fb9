package domain

import "time"

// Todo is a task record owned by exactly one user. UserID is assigned
// from the authenticated caller, never from client input.
type Todo struct {
	ID        string
	Item      string
	Completed bool
	UserID    string
	CreatedAt time.Time
}

package domain

import "time"

// User is a person assets can be assigned to. These are directory records for
// ownership tracking, not login accounts; authentication is the identity
// provider's job.
type User struct {
	ID         string
	Username   string
	FullName   string
	Email      string
	Department string
	Title      string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

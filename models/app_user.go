package models

import "time"

// AppUser is an API credential. Role "ingest" owns the trusted write
// path; role "agent" is the read-only query side of the reference
// deployment.
type AppUser struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	Password  string    `json:"password,omitempty" db:"password_hash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const (
	RoleIngest = "ingest"
	RoleAgent  = "agent"
)

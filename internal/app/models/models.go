// Package models holds the process-wide data model for the alumni network.
// Every entity is declared exactly once here and registered through the
// migrations, never redefined per request.
package models

// UserRole is the account role carried on users and session tokens.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleAlumnus UserRole = "alumnus"
	RoleStudent UserRole = "student"
)

// Valid reports whether the role is one of the known account roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleAlumnus, RoleStudent:
		return true
	}
	return false
}

// Alumnus verification status values.
const (
	AlumnusUnverified = 0
	AlumnusVerified   = 1
)

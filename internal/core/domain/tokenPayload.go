package domain

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	Admin   UserRole = "admin"
	AppUser UserRole = "appuser"
)

// TokenPayload is what a verified bearer token tells us about the caller.
// FirstName and LastName are optional claims used as renter defaults.
type TokenPayload struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Role      UserRole
	FirstName string
	LastName  string
}

func (p *TokenPayload) IsAdmin() bool {
	return p != nil && p.Role == Admin
}

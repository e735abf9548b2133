package user

import (
	"github.com/google/uuid"
)

// Principal is the authenticated identity attached to a request by the
// session layer. It is passed explicitly into every check; nothing in the
// core reads ambient session state.
type Principal struct {
	ID              uuid.UUID
	IsAuthenticated bool
}

func Anonymous() Principal {
	return Principal{ID: uuid.Nil, IsAuthenticated: false}
}

func Authenticated(id uuid.UUID) Principal {
	return Principal{ID: id, IsAuthenticated: true}
}

// ProfileSnapshot is the stored authorization attributes for a principal,
// read fresh per evaluation. DashboardAccess is tri-state on purpose: only
// an explicit stored true opens the gate, absence fails closed.
type ProfileSnapshot struct {
	UserID          uuid.UUID
	Role            Role
	IsVerified      bool
	DashboardAccess *bool
}

func (p *ProfileSnapshot) DashboardAccessEnabled() bool {
	return p.DashboardAccess != nil && *p.DashboardAccess
}

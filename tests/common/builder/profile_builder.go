//go:build unit || e2e

package builder

import (
	"franchise-store/internal/domain/access"
	"franchise-store/internal/domain/user"

	"github.com/google/uuid"
)

// ProfileBuilder produces the fully-provisioned dashboard user by
// default; tests mutate it toward each denial case.
type ProfileBuilder struct {
	UserID          uuid.UUID
	Role            string
	IsVerified      bool
	DashboardAccess *bool
}

func NewProfileBuilder() *ProfileBuilder {
	enabled := true
	return &ProfileBuilder{
		UserID:          uuid.New(),
		Role:            "franchise",
		IsVerified:      true,
		DashboardAccess: &enabled,
	}
}

func (p *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(p)
	return p
}

func (p *ProfileBuilder) BuildSnapshot() *user.ProfileSnapshot {
	return &user.ProfileSnapshot{
		UserID:          p.UserID,
		Role:            user.Role(p.Role),
		IsVerified:      p.IsVerified,
		DashboardAccess: p.DashboardAccess,
	}
}

// BuildRequest pairs the snapshot with an authenticated principal, the
// shape the policy chain sees after a successful profile read.
func (p *ProfileBuilder) BuildRequest() access.Request {
	return access.Request{
		Principal: user.Authenticated(p.UserID),
		Profile:   p.BuildSnapshot(),
	}
}

func (p *ProfileBuilder) WithRole(role string) *ProfileBuilder {
	p.Role = role
	return p
}

func (p *ProfileBuilder) AsUnverified() *ProfileBuilder {
	p.IsVerified = false
	return p
}

func (p *ProfileBuilder) WithDashboardAccess(enabled bool) *ProfileBuilder {
	p.DashboardAccess = &enabled
	return p
}

func (p *ProfileBuilder) WithoutDashboardFlag() *ProfileBuilder {
	p.DashboardAccess = nil
	return p
}

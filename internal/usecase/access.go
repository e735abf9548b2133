package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"franchise-store/internal/domain/access"
	"franchise-store/internal/domain/user"
	"franchise-store/internal/infra"
	"franchise-store/internal/pkg/clock"
	"franchise-store/internal/pkg/errs"
)

// ProfileReader is the data-store collaborator for authorization
// attributes. Retry policy, if any, lives behind this interface.
type ProfileReader interface {
	FindByUserID(ctx context.Context, id uuid.UUID) (*user.ProfileSnapshot, error)
}

// DashboardAccess decides whether a principal may enter a privileged
// dashboard. It fetches the profile snapshot, runs the pure policy chain
// over it, and reports role mismatches to the security-event sink.
type DashboardAccess interface {
	// Authorize returns the decision plus a non-nil error only when the
	// profile read failed transiently, so callers can distinguish "denied"
	// from "could not decide" and retry or show a neutral error.
	Authorize(ctx context.Context, principal user.Principal, assertedRole *user.Role) (access.Decision, error)
}

type dashboardAccessImpl struct {
	profiles ProfileReader
	events   SecurityEventSink
	clock    clock.Clock
}

func NewDashboardAccess(profiles ProfileReader, events SecurityEventSink, clk clock.Clock) DashboardAccess {
	return &dashboardAccessImpl{
		profiles: profiles,
		events:   events,
		clock:    clk,
	}
}

func (d *dashboardAccessImpl) Authorize(ctx context.Context, principal user.Principal, assertedRole *user.Role) (access.Decision, error) {
	req := access.Request{
		Principal:    principal,
		AssertedRole: assertedRole,
	}

	// The profile read is skipped for anonymous principals: the chain
	// denies on step 1 before the snapshot would ever be consulted.
	var readErr error
	if principal.IsAuthenticated {
		profile, err := d.profiles.FindByUserID(ctx, principal.ID)
		switch {
		case err == nil:
			req.Profile = profile
		case infra.IsKind(err, infra.KindNotFound):
			// Missing profile is a business outcome, not a read failure.
		default:
			req.ProfileErr = err
			readErr = errs.Mark(err, errs.ErrProfileUnavailable)
		}
	}

	decision := access.Evaluate(req)

	if decision.IsSecurityAnomaly() {
		d.reportMismatch(ctx, principal, assertedRole, req.Profile)
	}

	return decision, readErr
}

func (d *dashboardAccessImpl) reportMismatch(ctx context.Context, principal user.Principal, assertedRole *user.Role, profile *user.ProfileSnapshot) {
	detail := "client-asserted role diverges from stored role"
	if assertedRole != nil && profile != nil {
		detail = "asserted role " + assertedRole.String() + " does not match stored role " + profile.Role.String()
	}

	userID := principal.ID
	event := SecurityEvent{
		Kind:       EventRoleMismatch,
		UserID:     &userID,
		Detail:     detail,
		OccurredAt: d.clock.Now(),
	}

	if err := d.events.Report(ctx, event); err != nil {
		slog.Error("failed to report role mismatch", "user_id", principal.ID, "error", err.Error())
	}
}

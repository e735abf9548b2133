package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SecurityEventKind string

const (
	EventRoleMismatch      SecurityEventKind = "role_mismatch"
	EventRateLimitExceeded SecurityEventKind = "rate_limit_exceeded"
)

// SecurityEvent records an anomaly for audit: a tampered client role or an
// exhausted rate limit. Ordinary denials (not verified, wrong role) are
// never reported here.
type SecurityEvent struct {
	Kind       SecurityEventKind
	UserID     *uuid.UUID
	ClientKey  string
	Detail     string
	OccurredAt time.Time
}

// SecurityEventSink is the observability collaborator. Delivery is
// best-effort: a failing sink must never block a denial.
type SecurityEventSink interface {
	Report(ctx context.Context, event SecurityEvent) error
}

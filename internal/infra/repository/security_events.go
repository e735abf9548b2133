package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"franchise-store/internal/infra"
	"franchise-store/internal/usecase"
)

// SecurityEventRepository persists anomalies (role mismatches, exhausted
// rate limits) for audit and logs them at warn level. It is the
// SecurityEventSink implementation; callers treat delivery as best-effort.
type SecurityEventRepository struct {
	db *pgxpool.Pool
}

func NewSecurityEventRepository(db *pgxpool.Pool) *SecurityEventRepository {
	return &SecurityEventRepository{db: db}
}

func (r *SecurityEventRepository) Report(ctx context.Context, event usecase.SecurityEvent) error {
	slog.Warn("security event",
		"kind", string(event.Kind),
		"user_id", userIDValue(event.UserID),
		"client_key", event.ClientKey,
		"detail", event.Detail,
	)

	_, err := r.db.Exec(ctx, `
		INSERT INTO security_events (id, kind, user_id, client_key, detail, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New(), string(event.Kind), event.UserID, event.ClientKey, event.Detail, event.OccurredAt)
	if err != nil {
		return infra.WrapRepoErr("failed to persist security event", err)
	}
	return nil
}

func userIDValue(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

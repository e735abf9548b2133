package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"franchise-store/internal/domain/user"
	"franchise-store/internal/infra"
)

// ProfileRepository reads the authorization attributes the access policy
// chain evaluates. Snapshots are read fresh per request and never cached
// here: verification and the access flag can be revoked between requests.
type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, id uuid.UUID) (*user.ProfileSnapshot, error) {
	var (
		snapshot user.ProfileSnapshot
		role     string
	)
	err := r.db.QueryRow(ctx, `
		SELECT user_id, role, is_verified, dashboard_access
		FROM profiles
		WHERE user_id = $1
	`, id).Scan(&snapshot.UserID, &role, &snapshot.IsVerified, &snapshot.DashboardAccess)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile", err)
	}

	parsedRole, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored profile role is invalid", err)
	}
	snapshot.Role = parsedRole

	return &snapshot, nil
}

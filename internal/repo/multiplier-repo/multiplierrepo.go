package multiplierrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindEffective returns the active, unexpired multiplier with the highest
// factor; ties go to the one expiring first.
func (r *Repository) FindEffective(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.XPMultiplier, error) {
	query := `
        SELECT id, user_id, multiplier, expires_at, is_active, xp_earned
        FROM xp_multipliers
        WHERE user_id = $1 AND is_active = TRUE AND expires_at > $2
        ORDER BY multiplier DESC, expires_at ASC
        LIMIT 1
    `
	var m domain.XPMultiplier
	err := r.db.QueryRow(ctx, query, userID, now).Scan(&m.ID, &m.UserID, &m.Multiplier, &m.ExpiresAt, &m.IsActive, &m.XPEarned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to resolve xp multiplier", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) AddEarned(ctx context.Context, id uuid.UUID, amount int64) error {
	query := `
        UPDATE xp_multipliers
        SET xp_earned = xp_earned + $2
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		zap.L().Error("failed to accumulate multiplier xp", zap.String("multiplier_id", id.String()), zap.Error(err))
		return err
	}
	return nil
}

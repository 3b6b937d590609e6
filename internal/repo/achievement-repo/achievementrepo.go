package achievementrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

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

// UpsertProgress stores progress towards an achievement. Progress never moves
// backwards and an unlocked achievement keeps its original unlock time.
func (r *Repository) UpsertProgress(ctx context.Context, userID uuid.UUID, code string, target, progress int, at time.Time) error {
	query := `
        INSERT INTO referral_achievements (user_id, code, progress, target, unlocked, unlocked_at)
        VALUES ($1, $2, $3, $4, $3 >= $4, CASE WHEN $3 >= $4 THEN $5::timestamptz END)
        ON CONFLICT (user_id, code) DO UPDATE
        SET progress = GREATEST(referral_achievements.progress, EXCLUDED.progress),
            unlocked = referral_achievements.unlocked OR EXCLUDED.unlocked,
            unlocked_at = COALESCE(referral_achievements.unlocked_at, EXCLUDED.unlocked_at)
    `
	_, err := r.db.Exec(ctx, query, userID, code, progress, target, at)
	if err != nil {
		zap.L().Error("failed to upsert achievement progress",
			zap.String("user_id", userID.String()), zap.String("code", code), zap.Error(err))
		return err
	}
	return nil
}

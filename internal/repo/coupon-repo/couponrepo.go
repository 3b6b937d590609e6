package couponrepo

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

// MarkUsed consumes an unused coupon owned by userID. It reports false when
// the coupon is missing, belongs to someone else or is already used.
func (r *Repository) MarkUsed(ctx context.Context, id, userID uuid.UUID, at time.Time) (bool, error) {
	query := `
        UPDATE user_coupons
        SET is_used = TRUE, used_at = $3
        WHERE id = $1 AND user_id = $2 AND is_used = FALSE
    `
	tag, err := r.db.Exec(ctx, query, id, userID, at)
	if err != nil {
		zap.L().Error("failed to mark coupon used", zap.String("coupon_id", id.String()), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

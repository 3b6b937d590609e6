package referralrepo

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

const referralColumns = `id, referrer_id, referred_id, status, reward_claimed, referrer_xp, completed_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindAwaitingByReferred locks the unclaimed referral of referredID that still
// waits for a purchase. It returns nil when there is none.
func (r *Repository) FindAwaitingByReferred(ctx context.Context, referredID uuid.UUID) (*domain.Referral, error) {
	query := `
        SELECT ` + referralColumns + `
        FROM referrals
        WHERE referred_id = $1
          AND status IN ('pending', 'pending_purchase', 'signed_up')
          AND reward_claimed = FALSE
        FOR UPDATE
    `
	ref, err := scanReferral(r.db.QueryRow(ctx, query, referredID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find awaiting referral", zap.String("referred_id", referredID.String()), zap.Error(err))
		return nil, err
	}
	return ref, nil
}

// FindIncomplete lists referrals not yet completed, oldest first. A non-nil
// referredID narrows the result to that referred user.
func (r *Repository) FindIncomplete(ctx context.Context, referredID *uuid.UUID, limit int) ([]domain.Referral, error) {
	query := `
        SELECT ` + referralColumns + `
        FROM referrals
        WHERE status <> 'completed'
          AND ($1::uuid IS NULL OR referred_id = $1)
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, referredID, limit)
	if err != nil {
		zap.L().Error("can't get incomplete referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var refs []domain.Referral
	for rows.Next() {
		ref, err := scanReferral(rows)
		if err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, err
		}
		refs = append(refs, *ref)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate referrals", zap.Error(err))
		return nil, err
	}
	return refs, nil
}

// LockIncomplete takes the row lock on an open referral. It reports false
// when the referral is already completed or claimed.
func (r *Repository) LockIncomplete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
        SELECT id
        FROM referrals
        WHERE id = $1 AND reward_claimed = FALSE AND status <> 'completed'
        FOR UPDATE
    `
	var locked uuid.UUID
	err := r.db.QueryRow(ctx, query, id).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't lock referral", zap.String("referral_id", id.String()), zap.Error(err))
		return false, err
	}
	return true, nil
}

// Claim completes the referral and records the referrer reward. Only the
// caller that moves reward_claimed from false gets true.
func (r *Repository) Claim(ctx context.Context, id uuid.UUID, referrerXP int64, at time.Time) (bool, error) {
	query := `
        UPDATE referrals
        SET status = 'completed', reward_claimed = TRUE, referrer_xp = $2, completed_at = $3
        WHERE id = $1 AND reward_claimed = FALSE AND status <> 'completed'
    `
	tag, err := r.db.Exec(ctx, query, id, referrerXP, at)
	if err != nil {
		zap.L().Error("failed to claim referral", zap.String("referral_id", id.String()), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanReferral(row pgx.Row) (*domain.Referral, error) {
	var ref domain.Referral
	err := row.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.Status,
		&ref.RewardClaimed, &ref.ReferrerXP, &ref.CompletedAt, &ref.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

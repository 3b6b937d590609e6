package profilerepo

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

const profileColumns = `user_id, COALESCE(email, ''), total_xp, current_level, current_streak, longest_streak,
        total_orders, total_spent, total_reviews, total_referrals, referral_count,
        available_spins, store_credit, is_suspended, last_purchase_at, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Ensure creates a default profile for userID unless one exists.
// A non-empty email replaces the stored one.
func (r *Repository) Ensure(ctx context.Context, userID uuid.UUID, email string) error {
	query := `
        INSERT INTO user_profiles (user_id, email)
        VALUES ($1, NULLIF($2, ''))
        ON CONFLICT (user_id) DO UPDATE
        SET email = COALESCE(NULLIF(EXCLUDED.email, ''), user_profiles.email)
    `
	_, err := r.db.Exec(ctx, query, userID, email)
	if err != nil {
		zap.L().Error("failed to ensure user profile", zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM user_profiles
        WHERE user_id = $1
    `
	return r.scanOne(ctx, query, userID)
}

// GetForUpdate locks the profile row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM user_profiles
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.scanOne(ctx, query, userID)
}

func (r *Repository) scanOne(ctx context.Context, query string, userID uuid.UUID) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Email, &p.TotalXP, &p.CurrentLevel, &p.CurrentStreak, &p.LongestStreak,
		&p.TotalOrders, &p.TotalSpent, &p.TotalReviews, &p.TotalReferrals, &p.ReferralCount,
		&p.AvailableSpins, &p.StoreCredit, &p.IsSuspended, &p.LastPurchaseAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user profile", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// ApplyAward writes the recomputed XP and level together with the counter deltas.
func (r *Repository) ApplyAward(ctx context.Context, userID uuid.UUID, totalXP int64, level int, delta domain.ProfileDelta, now time.Time) error {
	query := `
        UPDATE user_profiles
        SET total_xp = $2,
            current_level = $3,
            total_orders = total_orders + $4,
            total_spent = total_spent + $5,
            total_reviews = total_reviews + $6,
            total_referrals = total_referrals + $7,
            referral_count = referral_count + $7,
            last_purchase_at = COALESCE($8, last_purchase_at),
            updated_at = $9
        WHERE user_id = $1
    `
	tag, err := r.db.Exec(ctx, query, userID, totalXP, level,
		delta.Orders, delta.Spent, delta.Reviews, delta.Referrals, delta.LastPurchaseAt, now)
	if err != nil {
		zap.L().Error("failed to apply xp award", zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

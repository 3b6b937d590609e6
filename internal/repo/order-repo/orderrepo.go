package orderrepo

import (
	"context"
	"errors"

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

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `
        SELECT id, user_id, payment_status, status, total, discount_amount, applied_reward_id, rewards_processed, created_at
        FROM orders
        WHERE id = $1
    `
	var order domain.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.UserID, &order.PaymentStatus, &order.Status, &order.Total,
		&order.DiscountAmount, &order.AppliedRewardID, &order.RewardsProcessed, &order.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.String("order_id", id.String()), zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// ClaimRewards flips rewards_processed on a paid order. It reports false when
// the order was already claimed or is not paid.
func (r *Repository) ClaimRewards(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
        UPDATE orders
        SET rewards_processed = TRUE
        WHERE id = $1 AND rewards_processed = FALSE AND payment_status = 'paid'
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to claim order rewards", zap.String("order_id", id.String()), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) HasDeliveredOrder(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM orders WHERE user_id = $1 AND status = 'delivered'
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		zap.L().Error("can't check delivered orders", zap.String("user_id", userID.String()), zap.Error(err))
		return false, err
	}
	return exists, nil
}

// HasPurchasedProduct reports whether any order of userID, paid or not, contains productID.
func (r *Repository) HasPurchasedProduct(ctx context.Context, userID uuid.UUID, productID string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM orders o
            JOIN order_items i ON i.order_id = o.id
            WHERE o.user_id = $1 AND i.product_id = $2
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, productID).Scan(&exists); err != nil {
		zap.L().Error("can't check product purchase", zap.String("user_id", userID.String()), zap.Error(err))
		return false, err
	}
	return exists, nil
}

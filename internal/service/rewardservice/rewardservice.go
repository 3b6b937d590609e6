package rewardservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/pg"
)

type OrderRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ClaimRewards(ctx context.Context, id uuid.UUID) (bool, error)
}

type CouponRepo interface {
	MarkUsed(ctx context.Context, id, userID uuid.UUID, at time.Time) (bool, error)
}

type Awarder interface {
	Award(ctx context.Context, grant domain.XPGrant) (*domain.XPAward, error)
}

type ReferralCompleter interface {
	CompleteForReferred(ctx context.Context, referredID uuid.UUID) (*domain.ReferralCompletion, error)
}

const (
	// MinPurchaseXP is granted for any paid order regardless of its total.
	MinPurchaseXP int64 = 10
	// SpendPerXP is the currency amount worth one XP.
	SpendPerXP = 10.0
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderNotOwned = errors.New("order belongs to another user")
	ErrOrderNotPaid  = errors.New("order is not paid")
)

// MsgClaimLost is reported in the settlement when a concurrent request
// claimed the order first.
const MsgClaimLost = "another process is handling rewards"

type Service struct {
	tx        pg.TXManager
	orders    OrderRepo
	coupons   CouponRepo
	awarder   Awarder
	referrals ReferralCompleter
	now       func() time.Time
}

func New(tx pg.TXManager, orders OrderRepo, coupons CouponRepo, awarder Awarder, referrals ReferralCompleter) *Service {
	return &Service{
		tx:        tx,
		orders:    orders,
		coupons:   coupons,
		awarder:   awarder,
		referrals: referrals,
		now:       time.Now,
	}
}

// PurchaseXP converts the amount actually paid into XP.
func PurchaseXP(paid float64) int64 {
	xp := int64(math.Floor(paid / SpendPerXP))
	if xp < MinPurchaseXP {
		return MinPurchaseXP
	}
	return xp
}

// Settle grants the one-time rewards of a paid order. The claim, the purchase
// award, the coupon and the referral completion commit together or not at all.
func (s *Service) Settle(ctx context.Context, orderID, userID uuid.UUID, email string) (*domain.Settlement, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.OwnedBy(userID) {
		zap.L().Warn("settlement attempted by non-owner",
			zap.String("order_id", orderID.String()), zap.String("user_id", userID.String()))
		return nil, ErrOrderNotOwned
	}
	if order.PaymentStatus != domain.PaymentPaid {
		return nil, ErrOrderNotPaid
	}
	if order.RewardsProcessed {
		return &domain.Settlement{AlreadyProcessed: true}, nil
	}

	result := &domain.Settlement{}
	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		*result = domain.Settlement{}

		claimed, err := s.orders.ClaimRewards(ctx, orderID)
		if err != nil {
			return err
		}
		if !claimed {
			result.AlreadyProcessed = true
			result.Error = MsgClaimLost
			return nil
		}

		now := s.now()
		paid := math.Max(order.Total-order.DiscountAmount, 0)
		award, err := s.awarder.Award(ctx, domain.XPGrant{
			UserID:      userID,
			Email:       email,
			Action:      domain.ActionPurchase,
			Amount:      PurchaseXP(paid),
			Description: fmt.Sprintf("Purchase reward for order %s", orderID),
			ReferenceID: orderID.String(),
			Delta: domain.ProfileDelta{
				Orders:         1,
				Spent:          paid,
				LastPurchaseAt: &now,
			},
		})
		if err != nil {
			return fmt.Errorf("award purchase xp: %w", err)
		}
		result.XPAwarded = award.FinalXP

		if order.AppliedRewardID != nil {
			used, err := s.coupons.MarkUsed(ctx, *order.AppliedRewardID, userID, now)
			if err != nil {
				return fmt.Errorf("mark coupon used: %w", err)
			}
			if !used {
				zap.L().Warn("applied coupon was already used",
					zap.String("order_id", orderID.String()),
					zap.String("coupon_id", order.AppliedRewardID.String()))
			}
			result.RewardMarkedUsed = used
		}

		completion, err := s.referrals.CompleteForReferred(ctx, userID)
		if err != nil {
			return fmt.Errorf("complete referral: %w", err)
		}
		if completion != nil {
			result.ReferralCompleted = true
			result.ReferrerXP = completion.XPAwarded
		}

		result.Success = true
		return nil
	})
	if err != nil {
		zap.L().Error("order settlement failed", zap.String("order_id", orderID.String()), zap.Error(err))
		return nil, err
	}

	if result.Success {
		zap.L().Info("order rewards settled",
			zap.String("order_id", orderID.String()),
			zap.Int64("xp", result.XPAwarded),
			zap.Bool("referral_completed", result.ReferralCompleted))
	}
	return result, nil
}

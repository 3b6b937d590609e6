package referralservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/pg"
)

type Repo interface {
	FindAwaitingByReferred(ctx context.Context, referredID uuid.UUID) (*domain.Referral, error)
	FindIncomplete(ctx context.Context, referredID *uuid.UUID, limit int) ([]domain.Referral, error)
	LockIncomplete(ctx context.Context, id uuid.UUID) (bool, error)
	Claim(ctx context.Context, id uuid.UUID, referrerXP int64, at time.Time) (bool, error)
}

type OrderRepo interface {
	HasDeliveredOrder(ctx context.Context, userID uuid.UUID) (bool, error)
}

type AchievementRepo interface {
	UpsertProgress(ctx context.Context, userID uuid.UUID, code string, target, progress int, at time.Time) error
}

type Awarder interface {
	Lock(ctx context.Context, userID uuid.UUID, email string) (*domain.UserProfile, error)
	Award(ctx context.Context, grant domain.XPGrant) (*domain.XPAward, error)
}

// MaxSweepBatch bounds the referrals loaded by one sweep.
const MaxSweepBatch = 500

// AchievementThresholds are the referral counts that unlock an achievement.
var AchievementThresholds = []int{1, 5, 10, 25}

var (
	ErrReferralClaimed = errors.New("referral already claimed")

	// ErrReferrerIneligible leaves the referral open until the referrer may earn XP again.
	ErrReferrerIneligible = errors.New("referrer cannot receive rewards")
)

type Service struct {
	tx           pg.TXManager
	repo         Repo
	orders       OrderRepo
	achievements AchievementRepo
	awarder      Awarder
	now          func() time.Time
}

func New(tx pg.TXManager, repo Repo, orders OrderRepo, achievements AchievementRepo, awarder Awarder) *Service {
	return &Service{
		tx:           tx,
		repo:         repo,
		orders:       orders,
		achievements: achievements,
		awarder:      awarder,
		now:          time.Now,
	}
}

// Tier maps the referrer's completed referral count, before the current one,
// to the tier and the XP it pays.
func Tier(count int) (domain.ReferralTier, int64) {
	switch {
	case count >= 25:
		return domain.TierDiamond, 750
	case count >= 10:
		return domain.TierGold, 500
	case count >= 5:
		return domain.TierSilver, 400
	default:
		return domain.TierBronze, 300
	}
}

func AchievementCode(threshold int) string {
	return fmt.Sprintf("referral_%d", threshold)
}

// complete pays the referrer of ref. Both the settlement and the sweep end up
// here so the conditional claim decides who pays. The referral row is locked
// before the referrer profile on every path.
func (s *Service) complete(ctx context.Context, ref domain.Referral) (*domain.ReferralCompletion, error) {
	var completion *domain.ReferralCompletion
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		open, err := s.repo.LockIncomplete(ctx, ref.ID)
		if err != nil {
			return err
		}
		if !open {
			return ErrReferralClaimed
		}

		referrer, err := s.awarder.Lock(ctx, ref.ReferrerID, "")
		if err != nil {
			return err
		}
		if referrer.IsSuspended {
			return ErrReferrerIneligible
		}
		tier, xp := Tier(referrer.ReferralCount)
		now := s.now()

		claimed, err := s.repo.Claim(ctx, ref.ID, xp, now)
		if err != nil {
			return err
		}
		if !claimed {
			return ErrReferralClaimed
		}

		award, err := s.awarder.Award(ctx, domain.XPGrant{
			UserID:      ref.ReferrerID,
			Action:      domain.ActionReferral,
			Amount:      xp,
			Description: fmt.Sprintf("Referral reward (%s tier)", tier),
			ReferenceID: ref.ID.String(),
			Delta:       domain.ProfileDelta{Referrals: 1},
		})
		if err != nil {
			return err
		}

		count := referrer.ReferralCount + 1
		for _, threshold := range AchievementThresholds {
			if err := s.achievements.UpsertProgress(ctx, ref.ReferrerID, AchievementCode(threshold), threshold, count, now); err != nil {
				return err
			}
		}

		completion = &domain.ReferralCompletion{
			ReferralID: ref.ID,
			ReferrerID: ref.ReferrerID,
			Tier:       tier,
			XPAwarded:  award.FinalXP,
			NewCount:   count,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("referral completed",
		zap.String("referral_id", ref.ID.String()),
		zap.String("referrer_id", ref.ReferrerID.String()),
		zap.String("tier", string(completion.Tier)),
		zap.Int64("xp", completion.XPAwarded))
	return completion, nil
}

// CompleteForReferred completes the awaiting referral of a user who just paid
// for an order. It returns nil when there is nothing to complete.
func (s *Service) CompleteForReferred(ctx context.Context, referredID uuid.UUID) (*domain.ReferralCompletion, error) {
	var completion *domain.ReferralCompletion
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		ref, err := s.repo.FindAwaitingByReferred(ctx, referredID)
		if err != nil || ref == nil {
			return err
		}
		completion, err = s.complete(ctx, *ref)
		switch {
		case errors.Is(err, ErrReferralClaimed):
			zap.L().Info("referral claimed concurrently", zap.String("referral_id", ref.ID.String()))
			return nil
		case errors.Is(err, ErrReferrerIneligible):
			zap.L().Info("referrer suspended, referral left open",
				zap.String("referral_id", ref.ID.String()),
				zap.String("referrer_id", ref.ReferrerID.String()))
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return completion, nil
}

// Pending lists referrals the sweep still has to look at.
func (s *Service) Pending(ctx context.Context, limit int) ([]domain.Referral, error) {
	if limit <= 0 || limit > MaxSweepBatch {
		limit = MaxSweepBatch
	}
	return s.repo.FindIncomplete(ctx, nil, limit)
}

// Process decides the sweep outcome of one referral and completes it when the
// referred user has a delivered order.
func (s *Service) Process(ctx context.Context, ref domain.Referral) (domain.SweepDetail, error) {
	detail := domain.SweepDetail{
		ReferralID: ref.ID,
		ReferrerID: ref.ReferrerID,
		ReferredID: ref.ReferredID,
	}
	if ref.RewardClaimed {
		detail.Status = domain.SweepAlreadyRewarded
		return detail, nil
	}

	delivered, err := s.orders.HasDeliveredOrder(ctx, ref.ReferredID)
	if err != nil {
		detail.Status = domain.SweepError
		return detail, err
	}
	if !delivered {
		detail.Status = domain.SweepNoDeliveredOrders
		return detail, nil
	}

	completion, err := s.complete(ctx, ref)
	switch {
	case errors.Is(err, ErrReferralClaimed):
		detail.Status = domain.SweepAlreadyRewarded
		return detail, nil
	case errors.Is(err, ErrReferrerIneligible):
		detail.Status = domain.SweepReferrerIneligible
		return detail, nil
	case err != nil:
		detail.Status = domain.SweepError
		return detail, err
	}
	detail.Status = domain.SweepCompleted
	detail.Tier = completion.Tier
	detail.XPAwarded = completion.XPAwarded
	return detail, nil
}

// Sweep processes every incomplete referral, or only those of referredID when
// it is set. A failing referral is reported and does not stop the sweep.
func (s *Service) Sweep(ctx context.Context, referredID *uuid.UUID) (*domain.SweepReport, error) {
	refs, err := s.repo.FindIncomplete(ctx, referredID, MaxSweepBatch)
	if err != nil {
		zap.L().Error("failed to load referrals for sweep", zap.Error(err))
		return nil, err
	}

	report := &domain.SweepReport{
		Errors:  []string{},
		Details: make([]domain.SweepDetail, 0, len(refs)),
	}
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		detail, err := s.Process(ctx, ref)
		report.Processed++
		if err != nil {
			zap.L().Error("referral sweep step failed", zap.String("referral_id", ref.ID.String()), zap.Error(err))
			report.Errors = append(report.Errors, fmt.Sprintf("referral %s: completion failed", ref.ID))
		}
		if detail.Status == domain.SweepCompleted {
			report.Completed++
		}
		report.Details = append(report.Details, detail)
	}

	zap.L().Info("referral sweep finished",
		zap.Int("processed", report.Processed),
		zap.Int("completed", report.Completed),
		zap.Int("errors", len(report.Errors)))
	return report, nil
}

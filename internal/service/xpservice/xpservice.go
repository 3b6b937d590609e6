package xpservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/pg"
	"github.com/GlebRadaev/gearxp/pkg/levels"
)

type ProfileRepo interface {
	Ensure(ctx context.Context, userID uuid.UUID, email string) error
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	ApplyAward(ctx context.Context, userID uuid.UUID, totalXP int64, level int, delta domain.ProfileDelta, now time.Time) error
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.XPTransaction) (*domain.XPTransaction, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.XPTransaction, error)
}

type MultiplierRepo interface {
	FindEffective(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.XPMultiplier, error)
	AddEarned(ctx context.Context, id uuid.UUID, amount int64) error
}

// Notifier receives best-effort events once the award is committed.
type Notifier interface {
	LevelUp(email string, level int)
}

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidAction    = errors.New("action is required")
	ErrProfileSuspended = errors.New("profile is suspended")
	ErrProfileMissing   = errors.New("profile missing after create")
)

type Service struct {
	tx          pg.TXManager
	profiles    ProfileRepo
	txs         TransactionRepo
	multipliers MultiplierRepo
	notifier    Notifier
	now         func() time.Time
}

func New(tx pg.TXManager, profiles ProfileRepo, txs TransactionRepo, multipliers MultiplierRepo, notifier Notifier) *Service {
	return &Service{
		tx:          tx,
		profiles:    profiles,
		txs:         txs,
		multipliers: multipliers,
		notifier:    notifier,
		now:         time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ResolveMultiplier returns the effective multiplier of userID or nil when
// no boost is active.
func (s *Service) ResolveMultiplier(ctx context.Context, userID uuid.UUID) (*domain.XPMultiplier, error) {
	m, err := s.multipliers.FindEffective(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Lock creates the profile when absent and locks its row for the rest of the
// surrounding transaction.
func (s *Service) Lock(ctx context.Context, userID uuid.UUID, email string) (*domain.UserProfile, error) {
	if err := s.profiles.Ensure(ctx, userID, email); err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileMissing
	}
	return profile, nil
}

func (s *Service) Award(ctx context.Context, grant domain.XPGrant) (*domain.XPAward, error) {
	if grant.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if grant.Action == "" {
		return nil, ErrInvalidAction
	}

	var award *domain.XPAward
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		now := s.now()
		profile, err := s.Lock(ctx, grant.UserID, grant.Email)
		if err != nil {
			return err
		}
		if profile.IsSuspended {
			zap.L().Info("xp refused for suspended profile", zap.String("user_id", grant.UserID.String()))
			return ErrProfileSuspended
		}

		var boost *domain.XPMultiplier
		if grant.Boost {
			boost, err = s.multipliers.FindEffective(ctx, grant.UserID, now)
			if err != nil {
				return err
			}
		}
		factor := 1.0
		if boost != nil {
			factor = boost.Multiplier
		}

		final := int64(math.Round(float64(grant.Amount) * factor))
		bonus := final - grant.Amount
		total := profile.TotalXP + final
		level := levels.Level(total)

		if err := s.profiles.ApplyAward(ctx, grant.UserID, total, level, grant.Delta, now); err != nil {
			return err
		}

		entry := &domain.XPTransaction{
			UserID:      grant.UserID,
			Amount:      final,
			Action:      grant.Action,
			Description: describe(grant, bonus, factor),
			CreatedAt:   now,
		}
		if grant.ReferenceID != "" {
			ref := grant.ReferenceID
			entry.ReferenceID = &ref
		}
		if _, err := s.txs.Create(ctx, entry); err != nil {
			return err
		}

		if boost != nil && bonus > 0 {
			if err := s.multipliers.AddEarned(ctx, boost.ID, bonus); err != nil {
				return err
			}
		}

		award = &domain.XPAward{
			FinalXP:    final,
			BaseXP:     grant.Amount,
			BonusXP:    bonus,
			Multiplier: factor,
			NewTotalXP: total,
			NewLevel:   level,
			OldLevel:   profile.CurrentLevel,
			LeveledUp:  level > profile.CurrentLevel,
		}

		email := grant.Email
		if email == "" {
			email = profile.Email
		}
		if award.LeveledUp && email != "" && s.notifier != nil {
			pg.AfterCommit(ctx, func() {
				s.notifier.LevelUp(email, level)
			})
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrProfileSuspended) {
			zap.L().Error("failed to award xp",
				zap.String("user_id", grant.UserID.String()),
				zap.String("action", string(grant.Action)),
				zap.Error(err))
		}
		return nil, err
	}

	zap.L().Debug("xp awarded",
		zap.String("user_id", grant.UserID.String()),
		zap.String("action", string(grant.Action)),
		zap.Int64("xp", award.FinalXP),
		zap.Int("level", award.NewLevel))
	return award, nil
}

// Profile returns the profile of userID, creating a default one on first access.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID, email string) (*domain.UserProfile, error) {
	if err := s.profiles.Ensure(ctx, userID, email); err != nil {
		return nil, err
	}
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileMissing
	}
	return profile, nil
}

func (s *Service) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.XPTransaction, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	txs, err := s.txs.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []domain.XPTransaction{}
	}
	return txs, nil
}

func describe(grant domain.XPGrant, bonus int64, factor float64) string {
	desc := grant.Description
	if desc == "" {
		desc = fmt.Sprintf("XP for %s", grant.Action)
	}
	if bonus > 0 {
		desc = fmt.Sprintf("%s (%d base + %d bonus @ %sx)",
			desc, grant.Amount, bonus, strconv.FormatFloat(factor, 'f', -1, 64))
	}
	return desc
}

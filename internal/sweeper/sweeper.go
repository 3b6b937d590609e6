// Package sweeper completes delivered referrals in the background.
package sweeper

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gearxp/internal/config"
	"github.com/GlebRadaev/gearxp/internal/domain"
)

type Service interface {
	Pending(ctx context.Context, limit int) ([]domain.Referral, error)
	Process(ctx context.Context, ref domain.Referral) (domain.SweepDetail, error)
}

const batchLimit = 500

type Sweeper struct {
	service  Service
	interval time.Duration
	workers  int
	limit    int
	inFlight sync.Map
}

func New(cfg *config.Config, service Service) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: cfg.SweepInterval,
		workers:  cfg.SweepWorkers,
		limit:    batchLimit,
	}
}

// maxBatches caps how many batches may run at once when ticks outpace them.
const maxBatches = 2

// Run blocks until ctx is canceled and every running batch has returned.
// A tick does not wait for the previous batch, so a slow batch overlaps the
// next one and the in-flight set keeps them off the same referral.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Info("Referral sweeper disabled")
		return
	}
	zap.L().Info("Referral sweeper started", zap.Duration("interval", s.interval))

	var batches sync.WaitGroup
	defer batches.Wait()
	slots := make(chan struct{}, maxBatches)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			select {
			case slots <- struct{}{}:
			default:
				zap.L().Warn("Referral sweep skipped, earlier batches still running")
				continue
			}
			batches.Add(1)
			go func() {
				defer batches.Done()
				defer func() { <-slots }()
				s.sweep(ctx)
			}()
		}
	}
}

// sweep processes one batch and returns how many referrals it completed.
// Referrals still running from an earlier tick are skipped.
func (s *Sweeper) sweep(ctx context.Context) int {
	refs, err := s.service.Pending(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch referrals for sweep", zap.Error(err))
		return 0
	}

	var completed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, ref := range refs {
		ref := ref

		if _, loaded := s.inFlight.LoadOrStore(ref.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			defer s.inFlight.Delete(ref.ID)
			detail, err := s.service.Process(ctx, ref)
			if err != nil {
				zap.L().Error("Referral sweep failed", zap.String("referral_id", ref.ID.String()), zap.Error(err))
				return err
			}
			if detail.Status == domain.SweepCompleted {
				completed.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Warn("Referral sweep finished with errors", zap.Error(err))
	}
	n := int(completed.Load())
	if n > 0 {
		zap.L().Info("Referral sweep completed referrals", zap.Int("completed", n))
	}
	return n
}

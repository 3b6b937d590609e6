package service

import (
	"github.com/GlebRadaev/gearxp/internal/handlers/referrals"
	"github.com/GlebRadaev/gearxp/internal/handlers/reviews"
	"github.com/GlebRadaev/gearxp/internal/handlers/rewards"
	"github.com/GlebRadaev/gearxp/internal/handlers/xp"
	"github.com/GlebRadaev/gearxp/internal/pg"
	"github.com/GlebRadaev/gearxp/internal/repo"
	"github.com/GlebRadaev/gearxp/internal/service/referralservice"
	"github.com/GlebRadaev/gearxp/internal/service/reviewservice"
	"github.com/GlebRadaev/gearxp/internal/service/rewardservice"
	"github.com/GlebRadaev/gearxp/internal/service/xpservice"
	"github.com/GlebRadaev/gearxp/internal/sweeper"
)

type Services struct {
	XPService       xp.Service
	RewardService   rewards.Service
	ReferralService referrals.Service
	ReviewService   reviews.Service
	SweepService    sweeper.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier xpservice.Notifier) *Services {
	xpService := xpservice.New(txManager, repo.ProfileRepo, repo.TransactionRepo, repo.MultiplierRepo, notifier)
	referralService := referralservice.New(txManager, repo.ReferralRepo, repo.OrderRepo, repo.AchievementRepo, xpService)
	rewardService := rewardservice.New(txManager, repo.OrderRepo, repo.CouponRepo, xpService, referralService)
	reviewService := reviewservice.New(txManager, repo.ReviewRepo, repo.OrderRepo, xpService)

	return &Services{
		XPService:       xpService,
		RewardService:   rewardService,
		ReferralService: referralService,
		ReviewService:   reviewService,
		SweepService:    referralService,
	}
}

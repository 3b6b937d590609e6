package repo

import (
	"github.com/GlebRadaev/gearxp/internal/pg"
	achievementrepo "github.com/GlebRadaev/gearxp/internal/repo/achievement-repo"
	couponrepo "github.com/GlebRadaev/gearxp/internal/repo/coupon-repo"
	multiplierrepo "github.com/GlebRadaev/gearxp/internal/repo/multiplier-repo"
	orderrepo "github.com/GlebRadaev/gearxp/internal/repo/order-repo"
	profilerepo "github.com/GlebRadaev/gearxp/internal/repo/profile-repo"
	referralrepo "github.com/GlebRadaev/gearxp/internal/repo/referral-repo"
	reviewrepo "github.com/GlebRadaev/gearxp/internal/repo/review-repo"
	transactionrepo "github.com/GlebRadaev/gearxp/internal/repo/transaction-repo"
	"github.com/GlebRadaev/gearxp/internal/service/referralservice"
	"github.com/GlebRadaev/gearxp/internal/service/reviewservice"
	"github.com/GlebRadaev/gearxp/internal/service/rewardservice"
	"github.com/GlebRadaev/gearxp/internal/service/xpservice"
)

// OrderRepo is read by settlement, the referral sweep and the review gate.
type OrderRepo interface {
	rewardservice.OrderRepo
	referralservice.OrderRepo
	reviewservice.PurchaseRepo
}

type Repositories struct {
	ProfileRepo     xpservice.ProfileRepo
	TransactionRepo xpservice.TransactionRepo
	MultiplierRepo  xpservice.MultiplierRepo
	OrderRepo       OrderRepo
	CouponRepo      rewardservice.CouponRepo
	ReferralRepo    referralservice.Repo
	AchievementRepo referralservice.AchievementRepo
	ReviewRepo      reviewservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		ProfileRepo:     profilerepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		MultiplierRepo:  multiplierrepo.New(conn),
		OrderRepo:       orderrepo.New(conn),
		CouponRepo:      couponrepo.New(conn),
		ReferralRepo:    referralrepo.New(conn),
		AchievementRepo: achievementrepo.New(conn),
		ReviewRepo:      reviewrepo.New(conn),
	}
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDelta lists counter changes applied together with an XP grant.
type ProfileDelta struct {
	Orders         int
	Spent          float64
	Reviews        int
	Referrals      int
	LastPurchaseAt *time.Time
}

type XPGrant struct {
	UserID      uuid.UUID
	Email       string
	Action      ActionTag
	Amount      int64
	Description string
	ReferenceID string
	// Boost applies the user's active multiplier to Amount.
	Boost bool
	Delta ProfileDelta
}

type XPAward struct {
	FinalXP    int64
	BaseXP     int64
	BonusXP    int64
	Multiplier float64
	NewTotalXP int64
	NewLevel   int
	OldLevel   int
	LeveledUp  bool
}

type Settlement struct {
	Success           bool
	XPAwarded         int64
	RewardMarkedUsed  bool
	ReferralCompleted bool
	ReferrerXP        int64
	AlreadyProcessed  bool
	Error             string
}

type ReferralCompletion struct {
	ReferralID uuid.UUID
	ReferrerID uuid.UUID
	Tier       ReferralTier
	XPAwarded  int64
	NewCount   int
}

type SweepDetail struct {
	ReferralID uuid.UUID
	ReferrerID uuid.UUID
	ReferredID uuid.UUID
	Status     string
	Tier       ReferralTier
	XPAwarded  int64
}

type SweepReport struct {
	Processed int
	Completed int
	Errors    []string
	Details   []SweepDetail
}

type ReviewInput struct {
	UserID     uuid.UUID
	Email      string
	ProductID  string
	Rating     int
	Title      string
	Content    string
	AuthorName string
	Images     []string
}

type ReviewResult struct {
	ReviewID         uuid.UUID
	XPAwarded        int64
	VerifiedPurchase bool
	LeveledUp        bool
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserProfile struct {
	UserID         uuid.UUID  `db:"user_id"`
	Email          string     `db:"email"`
	TotalXP        int64      `db:"total_xp"`
	CurrentLevel   int        `db:"current_level"`
	CurrentStreak  int        `db:"current_streak"`
	LongestStreak  int        `db:"longest_streak"`
	TotalOrders    int        `db:"total_orders"`
	TotalSpent     float64    `db:"total_spent"`
	TotalReviews   int        `db:"total_reviews"`
	TotalReferrals int        `db:"total_referrals"`
	ReferralCount  int        `db:"referral_count"`
	AvailableSpins int        `db:"available_spins"`
	StoreCredit    float64    `db:"store_credit"`
	IsSuspended    bool       `db:"is_suspended"`
	LastPurchaseAt *time.Time `db:"last_purchase_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

type XPTransaction struct {
	ID          int64     `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Amount      int64     `db:"amount"`
	Action      ActionTag `db:"action"`
	Description string    `db:"description"`
	ReferenceID *string   `db:"reference_id"`
	CreatedAt   time.Time `db:"created_at"`
}

type XPMultiplier struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	Multiplier float64   `db:"multiplier"`
	ExpiresAt  time.Time `db:"expires_at"`
	IsActive   bool      `db:"is_active"`
	XPEarned   int64     `db:"xp_earned"`
}

type Order struct {
	ID               uuid.UUID      `db:"id"`
	UserID           *uuid.UUID     `db:"user_id"`
	PaymentStatus    PaymentStatus  `db:"payment_status"`
	Status           DeliveryStatus `db:"status"`
	Total            float64        `db:"total"`
	DiscountAmount   float64        `db:"discount_amount"`
	AppliedRewardID  *uuid.UUID     `db:"applied_reward_id"`
	RewardsProcessed bool           `db:"rewards_processed"`
	CreatedAt        time.Time      `db:"created_at"`
}

// OwnedBy reports whether the order belongs to a registered user with the given id.
func (o *Order) OwnedBy(userID uuid.UUID) bool {
	return o.UserID != nil && *o.UserID == userID
}

type Referral struct {
	ID            uuid.UUID      `db:"id"`
	ReferrerID    uuid.UUID      `db:"referrer_id"`
	ReferredID    uuid.UUID      `db:"referred_id"`
	Status        ReferralStatus `db:"status"`
	RewardClaimed bool           `db:"reward_claimed"`
	ReferrerXP    int64          `db:"referrer_xp"`
	CompletedAt   *time.Time     `db:"completed_at"`
	CreatedAt     time.Time      `db:"created_at"`
}

type UserCoupon struct {
	ID            uuid.UUID    `db:"id"`
	UserID        uuid.UUID    `db:"user_id"`
	DiscountType  DiscountType `db:"discount_type"`
	DiscountValue float64      `db:"discount_value"`
	MinOrderValue float64      `db:"min_order_value"`
	IsUsed        bool         `db:"is_used"`
	UsedAt        *time.Time   `db:"used_at"`
	ExpiresAt     *time.Time   `db:"expires_at"`
}

type Review struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	ProductID        string    `db:"product_id"`
	Rating           int       `db:"rating"`
	Title            string    `db:"title"`
	Content          string    `db:"content"`
	AuthorName       string    `db:"author_name"`
	Images           []string  `db:"images"`
	VerifiedPurchase bool      `db:"verified_purchase"`
	XPAwarded        int64     `db:"xp_awarded"`
	CreatedAt        time.Time `db:"created_at"`
}

type Achievement struct {
	UserID     uuid.UUID  `db:"user_id"`
	Code       string     `db:"code"`
	Progress   int        `db:"progress"`
	Target     int        `db:"target"`
	Unlocked   bool       `db:"unlocked"`
	UnlockedAt *time.Time `db:"unlocked_at"`
}

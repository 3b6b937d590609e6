package domain

// ActionTag is the category recorded on every XP transaction.
type ActionTag string

const (
	ActionPurchase    ActionTag = "purchase"
	ActionReferral    ActionTag = "referral"
	ActionReview      ActionTag = "review"
	ActionDailyLogin  ActionTag = "daily_login"
	ActionDailyQuest  ActionTag = "daily_quest"
	ActionSpinWheel   ActionTag = "spin_wheel"
	ActionMysteryBox  ActionTag = "mystery_box"
	ActionGame        ActionTag = "game"
	ActionAchievement ActionTag = "achievement"
)

var clientActions = map[ActionTag]struct{}{
	ActionDailyLogin:  {},
	ActionDailyQuest:  {},
	ActionSpinWheel:   {},
	ActionMysteryBox:  {},
	ActionGame:        {},
	ActionAchievement: {},
}

// ParseClientAction accepts only the tags a client may claim XP for.
// Purchase, referral and review XP is issued by the server.
func ParseClientAction(s string) (ActionTag, bool) {
	tag := ActionTag(s)
	_, ok := clientActions[tag]
	return tag, ok
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "pending"
	DeliveryProcessing DeliveryStatus = "processing"
	DeliveryShipped    DeliveryStatus = "shipped"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryCancelled  DeliveryStatus = "cancelled"
)

type ReferralStatus string

const (
	ReferralPending         ReferralStatus = "pending"
	ReferralPendingPurchase ReferralStatus = "pending_purchase"
	ReferralSignedUp        ReferralStatus = "signed_up"
	ReferralCompleted       ReferralStatus = "completed"
)

// Awaiting reports whether the referral still waits for the referred user's purchase.
func (s ReferralStatus) Awaiting() bool {
	switch s {
	case ReferralPending, ReferralPendingPurchase, ReferralSignedUp:
		return true
	}
	return false
}

type ReferralTier string

const (
	TierBronze  ReferralTier = "bronze"
	TierSilver  ReferralTier = "silver"
	TierGold    ReferralTier = "gold"
	TierDiamond ReferralTier = "diamond"
)

type DiscountType string

const (
	DiscountPercentage   DiscountType = "percentage"
	DiscountFixed        DiscountType = "fixed"
	DiscountFreeShipping DiscountType = "free_shipping"
)

// Sweep outcomes recorded per referral.
const (
	SweepAlreadyRewarded    = "already_rewarded"
	SweepNoDeliveredOrders  = "no_delivered_orders"
	SweepReferrerIneligible = "referrer_ineligible"
	SweepCompleted          = "completed"
	SweepError              = "error"
)

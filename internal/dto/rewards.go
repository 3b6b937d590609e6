package dto

type ProcessRewardsRequestDTO struct {
	OrderID string `json:"orderId" example:"6f1c2a9e-3b7d-4f0e-9c1a-2d5e8b7a4c31"`
	UserID  string `json:"userId" example:"0b8d7c6e-1a2b-4c3d-8e9f-0a1b2c3d4e5f"`
}

type ProcessRewardsResponseDTO struct {
	Success           bool   `json:"success" example:"true"`
	XPAwarded         int64  `json:"xp_awarded,omitempty" example:"80"`
	RewardMarkedUsed  bool   `json:"reward_marked_used,omitempty" example:"true"`
	ReferralCompleted bool   `json:"referral_completed,omitempty" example:"true"`
	ReferrerXP        int64  `json:"referrer_xp,omitempty" example:"300"`
	AlreadyProcessed  bool   `json:"already_processed,omitempty" example:"false"`
	Error             string `json:"error,omitempty"`
}

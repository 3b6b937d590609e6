package dto

type SweepRequestDTO struct {
	UserID string `json:"user_id,omitempty" example:"0b8d7c6e-1a2b-4c3d-8e9f-0a1b2c3d4e5f"`
}

type SweepDetailDTO struct {
	ReferralID string `json:"referral_id"`
	ReferrerID string `json:"referrer_id"`
	ReferredID string `json:"referred_id"`
	Status     string `json:"status" example:"completed"`
	Tier       string `json:"tier,omitempty" example:"bronze"`
	XPAwarded  int64  `json:"xp_awarded" example:"300"`
}

type SweepResponseDTO struct {
	Processed int              `json:"processed" example:"3"`
	Completed int              `json:"completed" example:"1"`
	Errors    []string         `json:"errors"`
	Details   []SweepDetailDTO `json:"details"`
}

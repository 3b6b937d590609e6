package dto

import "time"

type AddXPRequestDTO struct {
	Amount      float64 `json:"amount" example:"25"`
	Action      string  `json:"action" example:"daily_login"`
	Description string  `json:"description,omitempty" example:"Daily login bonus"`
}

type AddXPResponseDTO struct {
	Success    bool    `json:"success" example:"true"`
	XPAwarded  int64   `json:"xp_awarded" example:"50"`
	BaseXP     int64   `json:"base_xp" example:"25"`
	BonusXP    int64   `json:"bonus_xp" example:"25"`
	Multiplier float64 `json:"multiplier" example:"2"`
	NewTotalXP int64   `json:"new_total_xp" example:"330"`
	NewLevel   int     `json:"new_level" example:"4"`
	LeveledUp  bool    `json:"leveled_up" example:"true"`
	OldLevel   int     `json:"old_level" example:"3"`
}

type LevelProgressDTO struct {
	Level        int     `json:"level" example:"4"`
	LevelStartXP int64   `json:"level_start_xp" example:"300"`
	NextLevelXP  int64   `json:"next_level_xp" example:"500"`
	Progress     float64 `json:"progress" example:"0.15"`
}

type ProfileResponseDTO struct {
	UserID         string           `json:"user_id" example:"6f1c2a9e-3b7d-4f0e-9c1a-2d5e8b7a4c31"`
	TotalXP        int64            `json:"total_xp" example:"330"`
	CurrentLevel   int              `json:"current_level" example:"4"`
	CurrentStreak  int              `json:"current_streak" example:"2"`
	LongestStreak  int              `json:"longest_streak" example:"7"`
	TotalOrders    int              `json:"total_orders" example:"3"`
	TotalSpent     float64          `json:"total_spent" example:"149.5"`
	TotalReviews   int              `json:"total_reviews" example:"1"`
	TotalReferrals int              `json:"total_referrals" example:"0"`
	AvailableSpins int              `json:"available_spins" example:"1"`
	StoreCredit    float64          `json:"store_credit" example:"0"`
	LevelProgress  LevelProgressDTO `json:"level_progress"`
}

type XPTransactionDTO struct {
	ID          int64     `json:"id" example:"42"`
	Amount      int64     `json:"amount" example:"80"`
	Action      string    `json:"action" example:"purchase"`
	Description string    `json:"description" example:"Purchase reward for order 6f1c2a9e"`
	ReferenceID *string   `json:"reference_id,omitempty" example:"6f1c2a9e-3b7d-4f0e-9c1a-2d5e8b7a4c31"`
	CreatedAt   time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

package dto

type SubmitReviewRequestDTO struct {
	ProductID  string   `json:"productId" example:"rgb-keyboard-tkl"`
	Rating     int      `json:"rating" example:"5"`
	Title      string   `json:"title" example:"Great switches"`
	Content    string   `json:"content" example:"Solid build, quiet enough for streaming."`
	AuthorName string   `json:"authorName" example:"NightOwl"`
	Images     []string `json:"images"`
}

type SubmitReviewResponseDTO struct {
	Success   bool   `json:"success" example:"true"`
	ReviewID  string `json:"review_id" example:"6f1c2a9e-3b7d-4f0e-9c1a-2d5e8b7a4c31"`
	XPAwarded int64  `json:"xp_awarded" example:"50"`
	Message   string `json:"message" example:"Review submitted! You earned 50 XP for a verified purchase review."`
}

package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/dto"
	"github.com/GlebRadaev/gearxp/internal/service/reviewservice"
	"github.com/GlebRadaev/gearxp/internal/service/xpservice"
	"github.com/GlebRadaev/gearxp/pkg/auth"
	"github.com/GlebRadaev/gearxp/pkg/utils"
)

type Service interface {
	Submit(ctx context.Context, in domain.ReviewInput) (*domain.ReviewResult, error)
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Submit godoc
//
//	@Summary		Submit a product review
//	@Description	Stores a review and grants review XP. Verified purchases earn more.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.SubmitReviewRequestDTO	true	"Review"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SubmitReviewResponseDTO
//	@Failure		400	{object}	utils.Response	"Validation failed or product already reviewed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Profile is suspended"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reviews/submit [post]
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SubmitReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.reviewService.Submit(r.Context(), domain.ReviewInput{
		UserID:     userID,
		Email:      auth.EmailFromContext(r.Context()),
		ProductID:  req.ProductID,
		Rating:     req.Rating,
		Title:      req.Title,
		Content:    req.Content,
		AuthorName: req.AuthorName,
		Images:     req.Images,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviewservice.ErrMissingFields),
			errors.Is(err, reviewservice.ErrInvalidRating),
			errors.Is(err, reviewservice.ErrTooManyImages),
			errors.Is(err, reviewservice.ErrAlreadyReviewed):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, xpservice.ErrProfileSuspended):
			utils.RespondWithError(w, http.StatusForbidden, "Account is suspended")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SubmitReviewResponseDTO{
		Success:   true,
		ReviewID:  result.ReviewID.String(),
		XPAwarded: result.XPAwarded,
		Message:   message(result),
	})
}

func message(result *domain.ReviewResult) string {
	if result.VerifiedPurchase {
		return fmt.Sprintf("Review submitted! You earned %d XP for a verified purchase review.", result.XPAwarded)
	}
	return fmt.Sprintf("Review submitted! You earned %d XP.", result.XPAwarded)
}

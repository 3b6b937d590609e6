package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/dto"
	"github.com/GlebRadaev/gearxp/internal/service/rewardservice"
	"github.com/GlebRadaev/gearxp/internal/service/xpservice"
	"github.com/GlebRadaev/gearxp/pkg/auth"
	"github.com/GlebRadaev/gearxp/pkg/utils"
)

type Service interface {
	Settle(ctx context.Context, orderID, userID uuid.UUID, email string) (*domain.Settlement, error)
}

type RewardsHandler struct {
	rewardService Service
}

func New(rewardService Service) *RewardsHandler {
	return &RewardsHandler{
		rewardService: rewardService,
	}
}

// ProcessRewards godoc
//
//	@Summary		Settle order rewards
//	@Description	Grants purchase XP, consumes the applied coupon and completes a pending referral. Runs once per order.
//	@Tags			Rewards
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ProcessRewardsRequestDTO	true	"Order to settle"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProcessRewardsResponseDTO	"Settled, or already processed"
//	@Failure		400	{object}	utils.Response					"Invalid request or order not paid"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		403	{object}	utils.Response					"Order belongs to another user or account is suspended"
//	@Failure		404	{object}	utils.Response					"Order not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/process-rewards [post]
func (h *RewardsHandler) ProcessRewards(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.ProcessRewardsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid orderId")
		return
	}
	if req.UserID != "" {
		bodyUserID, err := uuid.Parse(req.UserID)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid userId")
			return
		}
		if bodyUserID != userID {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
	}

	settlement, err := h.rewardService.Settle(r.Context(), orderID, userID, auth.EmailFromContext(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rewardservice.ErrOrderNotOwned):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, rewardservice.ErrOrderNotPaid):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, xpservice.ErrProfileSuspended):
			utils.RespondWithError(w, http.StatusForbidden, "Account is suspended")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProcessRewardsResponseDTO{
		Success:           settlement.Success,
		XPAwarded:         settlement.XPAwarded,
		RewardMarkedUsed:  settlement.RewardMarkedUsed,
		ReferralCompleted: settlement.ReferralCompleted,
		ReferrerXP:        settlement.ReferrerXP,
		AlreadyProcessed:  settlement.AlreadyProcessed,
		Error:             settlement.Error,
	})
}

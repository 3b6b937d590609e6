package referrals

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/dto"
	"github.com/GlebRadaev/gearxp/pkg/auth"
	"github.com/GlebRadaev/gearxp/pkg/utils"
)

type Service interface {
	Sweep(ctx context.Context, referredID *uuid.UUID) (*domain.SweepReport, error)
}

type ReferralHandler struct {
	referralService Service
}

func New(referralService Service) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// CompleteOnDelivery godoc
//
//	@Summary		Complete referrals of delivered orders
//	@Description	Rewards referrers whose referred user has a delivered order. Cron callers sweep everything or one user; bearer callers sweep only their own referral.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Param			request		body	dto.SweepRequestDTO	false	"Optional user filter"
//	@Param			user_id		query	string				false	"Optional user filter for GET"
//	@Param			X-Cron-Key	header	string				false	"Scheduler key"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SweepResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user_id"
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		403	{object}	utils.Response	"Sweeping another user"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/referrals/complete-on-delivery [post]
//	@Router			/api/referrals/complete-on-delivery [get]
func (h *ReferralHandler) CompleteOnDelivery(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("user_id")
	if r.Method == http.MethodPost {
		var req dto.SweepRequestDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.UserID != "" {
			raw = req.UserID
		}
	}

	var filter *uuid.UUID
	if raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid user_id")
			return
		}
		filter = &id
	}

	if !auth.IsTrigger(r.Context()) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if filter != nil && *filter != userID {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		filter = &userID
	}

	report, err := h.referralService.Sweep(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.SweepResponseDTO{
		Processed: report.Processed,
		Completed: report.Completed,
		Errors:    report.Errors,
		Details:   make([]dto.SweepDetailDTO, 0, len(report.Details)),
	}
	if response.Errors == nil {
		response.Errors = []string{}
	}
	for _, d := range report.Details {
		response.Details = append(response.Details, dto.SweepDetailDTO{
			ReferralID: d.ReferralID.String(),
			ReferrerID: d.ReferrerID.String(),
			ReferredID: d.ReferredID.String(),
			Status:     d.Status,
			Tier:       string(d.Tier),
			XPAwarded:  d.XPAwarded,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

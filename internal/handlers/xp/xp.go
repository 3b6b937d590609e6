package xp

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/dto"
	"github.com/GlebRadaev/gearxp/internal/service/xpservice"
	"github.com/GlebRadaev/gearxp/pkg/auth"
	"github.com/GlebRadaev/gearxp/pkg/levels"
	"github.com/GlebRadaev/gearxp/pkg/utils"
)

// MaxClientAmount caps the XP a client may claim in one request.
const MaxClientAmount = 1000

type Service interface {
	Award(ctx context.Context, grant domain.XPGrant) (*domain.XPAward, error)
	Profile(ctx context.Context, userID uuid.UUID, email string) (*domain.UserProfile, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.XPTransaction, error)
}

type XPHandler struct {
	xpService Service
}

func New(xpService Service) *XPHandler {
	return &XPHandler{
		xpService: xpService,
	}
}

// AddXP godoc
//
//	@Summary		Award XP for a client action
//	@Description	Grants XP for a client-claimable action. The active multiplier of the user applies.
//	@Tags			XP
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.AddXPRequestDTO	true	"Action and base XP amount"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AddXPResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid amount or action"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Profile is suspended"
//	@Failure		429	{object}	utils.Response	"Too many requests"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/add-xp [post]
func (h *XPHandler) AddXP(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.AddXPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount < 1 || req.Amount > MaxClientAmount || req.Amount != math.Trunc(req.Amount) {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be a whole number between 1 and 1000")
		return
	}
	action, ok := domain.ParseClientAction(req.Action)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid action")
		return
	}

	award, err := h.xpService.Award(r.Context(), domain.XPGrant{
		UserID:      userID,
		Email:       auth.EmailFromContext(r.Context()),
		Action:      action,
		Amount:      int64(req.Amount),
		Description: req.Description,
		Boost:       true,
	})
	if err != nil {
		switch {
		case errors.Is(err, xpservice.ErrProfileSuspended):
			utils.RespondWithError(w, http.StatusForbidden, "Account is suspended")
		case errors.Is(err, xpservice.ErrInvalidAmount), errors.Is(err, xpservice.ErrInvalidAction):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AddXPResponseDTO{
		Success:    true,
		XPAwarded:  award.FinalXP,
		BaseXP:     award.BaseXP,
		BonusXP:    award.BonusXP,
		Multiplier: award.Multiplier,
		NewTotalXP: award.NewTotalXP,
		NewLevel:   award.NewLevel,
		LeveledUp:  award.LeveledUp,
		OldLevel:   award.OldLevel,
	})
}

// GetProfile godoc
//
//	@Summary		Get gamification profile
//	@Description	Returns the XP profile of the authorized user, creating it on first access.
//	@Tags			XP
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/profile [get]
func (h *XPHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.xpService.Profile(r.Context(), userID, auth.EmailFromContext(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	progress := levels.ProgressOf(profile.TotalXP)
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		UserID:         profile.UserID.String(),
		TotalXP:        profile.TotalXP,
		CurrentLevel:   profile.CurrentLevel,
		CurrentStreak:  profile.CurrentStreak,
		LongestStreak:  profile.LongestStreak,
		TotalOrders:    profile.TotalOrders,
		TotalSpent:     profile.TotalSpent,
		TotalReviews:   profile.TotalReviews,
		TotalReferrals: profile.TotalReferrals,
		AvailableSpins: profile.AvailableSpins,
		StoreCredit:    profile.StoreCredit,
		LevelProgress: dto.LevelProgressDTO{
			Level:        progress.Level,
			LevelStartXP: progress.LevelStartXP,
			NextLevelXP:  progress.NextLevelXP,
			Progress:     progress.Pct,
		},
	})
}

// GetHistory godoc
//
//	@Summary		Get XP history
//	@Description	Returns the latest XP transactions of the authorized user, newest first.
//	@Tags			XP
//	@Produce		json
//	@Param			limit	query	int	false	"Number of entries (default 50, max 200)"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.XPTransactionDTO
//	@Failure		400	{object}	utils.Response	"Invalid limit"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/xp/history [get]
func (h *XPHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	txs, err := h.xpService.History(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.XPTransactionDTO, 0, len(txs))
	for _, tx := range txs {
		response = append(response, dto.XPTransactionDTO{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Action:      string(tx.Action),
			Description: tx.Description,
			ReferenceID: tx.ReferenceID,
			CreatedAt:   tx.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

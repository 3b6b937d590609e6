package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/gearxp/docs"
	"github.com/GlebRadaev/gearxp/internal/config"
	referralhandlers "github.com/GlebRadaev/gearxp/internal/handlers/referrals"
	reviewhandlers "github.com/GlebRadaev/gearxp/internal/handlers/reviews"
	rewardhandlers "github.com/GlebRadaev/gearxp/internal/handlers/rewards"
	xphandlers "github.com/GlebRadaev/gearxp/internal/handlers/xp"
	"github.com/GlebRadaev/gearxp/internal/service"
	"github.com/GlebRadaev/gearxp/pkg/auth"
	"github.com/GlebRadaev/gearxp/pkg/ratelimit"
)

type XPHandler interface {
	AddXP(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type RewardsHandler interface {
	ProcessRewards(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	CompleteOnDelivery(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	XPHandler       XPHandler
	RewardsHandler  RewardsHandler
	ReferralHandler ReferralHandler
	ReviewHandler   ReviewHandler

	tokens      auth.TokenValidator
	hasher      auth.HashServiceInterface
	cronKeyHash string
	limiter     *ratelimit.Limiter
}

func New(s *service.Services, cfg *config.Config, limiter *ratelimit.Limiter) *Handlers {
	return &Handlers{
		XPHandler:       xphandlers.New(s.XPService),
		RewardsHandler:  rewardhandlers.New(s.RewardService),
		ReferralHandler: referralhandlers.New(s.ReferralService),
		ReviewHandler:   reviewhandlers.New(s.ReviewService),
		tokens:          auth.NewJWTService(cfg.JWTSecret),
		hasher:          &auth.HashService{},
		cronKeyHash:     cfg.CronKeyHash,
		limiter:         limiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.tokens))
			r.With(h.limiter.Middleware("add-xp")).Post("/add-xp", h.XPHandler.AddXP)
			r.Get("/profile", h.XPHandler.GetProfile)
			r.Get("/xp/history", h.XPHandler.GetHistory)
			r.Post("/process-rewards", h.RewardsHandler.ProcessRewards)
			r.Post("/reviews/submit", h.ReviewHandler.Submit)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.TriggerMiddleware(h.cronKeyHash, h.hasher, h.tokens))
			r.Post("/referrals/complete-on-delivery", h.ReferralHandler.CompleteOnDelivery)
			r.Get("/referrals/complete-on-delivery", h.ReferralHandler.CompleteOnDelivery)
		})
	})

	return r
}

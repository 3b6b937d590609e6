package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gearxp/internal/config"
	"github.com/GlebRadaev/gearxp/internal/handlers/referrals"
	"github.com/GlebRadaev/gearxp/internal/handlers/reviews"
	"github.com/GlebRadaev/gearxp/internal/handlers/rewards"
	"github.com/GlebRadaev/gearxp/internal/handlers/xp"
	"github.com/GlebRadaev/gearxp/internal/service"
	"github.com/GlebRadaev/gearxp/pkg/auth"
)

const (
	testSecret  = "test-secret"
	testCronKey = "cron-secret"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		XPService:       xp.NewMockService(ctrl),
		RewardService:   rewards.NewMockService(ctrl),
		ReferralService: referrals.NewMockService(ctrl),
		ReviewService:   reviews.NewMockService(ctrl),
	}

	h := New(services, &config.Config{JWTSecret: testSecret}, nil)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.XPHandler)
	assert.NotNil(t, h.RewardsHandler)
	assert.NotNil(t, h.ReferralHandler)
	assert.NotNil(t, h.ReviewHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockXPHandler := NewMockXPHandler(ctrl)
	mockRewardsHandler := NewMockRewardsHandler(ctrl)
	mockReferralHandler := NewMockReferralHandler(ctrl)
	mockReviewHandler := NewMockReviewHandler(ctrl)

	mockXPHandler.EXPECT().AddXP(gomock.Any(), gomock.Any()).AnyTimes()
	mockXPHandler.EXPECT().GetProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockXPHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockRewardsHandler.EXPECT().ProcessRewards(gomock.Any(), gomock.Any()).AnyTimes()
	mockReferralHandler.EXPECT().CompleteOnDelivery(gomock.Any(), gomock.Any()).AnyTimes()
	mockReviewHandler.EXPECT().Submit(gomock.Any(), gomock.Any()).AnyTimes()

	hasher := &auth.HashService{}
	cronHash, err := hasher.HashKey(testCronKey)
	require.NoError(t, err)
	jwtService := auth.NewJWTService(testSecret)
	token, err := jwtService.GenerateJWT(uuid.New(), "gamer@example.com", time.Now().Add(time.Hour))
	require.NoError(t, err)

	h := &Handlers{
		XPHandler:       mockXPHandler,
		RewardsHandler:  mockRewardsHandler,
		ReferralHandler: mockReferralHandler,
		ReviewHandler:   mockReviewHandler,
		tokens:          jwtService,
		hasher:          hasher,
		cronKeyHash:     cronHash,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		header string
		value  string
		status int
	}{
		{"POST", "/api/add-xp", "", "", http.StatusUnauthorized},
		{"GET", "/api/profile", "", "", http.StatusUnauthorized},
		{"GET", "/api/xp/history", "", "", http.StatusUnauthorized},
		{"POST", "/api/process-rewards", "", "", http.StatusUnauthorized},
		{"POST", "/api/reviews/submit", "", "", http.StatusUnauthorized},
		{"POST", "/api/referrals/complete-on-delivery", "", "", http.StatusUnauthorized},
		{"POST", "/api/add-xp", "Authorization", "Bearer " + token, http.StatusOK},
		{"GET", "/api/profile", "Authorization", "Bearer " + token, http.StatusOK},
		{"GET", "/api/xp/history", "Authorization", "Bearer " + token, http.StatusOK},
		{"POST", "/api/process-rewards", "Authorization", "Bearer " + token, http.StatusOK},
		{"POST", "/api/reviews/submit", "Authorization", "Bearer " + token, http.StatusOK},
		{"GET", "/api/referrals/complete-on-delivery", "Authorization", "Bearer " + token, http.StatusOK},
		{"POST", "/api/referrals/complete-on-delivery", auth.CronKeyHeader, testCronKey, http.StatusOK},
		{"GET", "/api/referrals/complete-on-delivery", auth.CronKeyHeader, "wrong", http.StatusUnauthorized},
		{"GET", "/api/unknown", "", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.header, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

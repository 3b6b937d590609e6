package referrals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/dto"
	"github.com/GlebRadaev/gearxp/pkg/auth"
)

var (
	userID  = uuid.MustParse("0b8d7c6e-1a2b-4c3d-8e9f-0a1b2c3d4e5f")
	otherID = uuid.MustParse("9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d")
)

func NewMock(t *testing.T) (*ReferralHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func asTrigger(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.TriggerKey, true))
}

func asUser(r *http.Request) *http.Request {
	return r.WithContext(auth.WithUser(r.Context(), userID, ""))
}

func TestCompleteOnDelivery(t *testing.T) {
	handler, service := NewMock(t)
	referralID := uuid.New()

	tests := []struct {
		name         string
		method       string
		target       string
		body         string
		as           func(*http.Request) *http.Request
		prepareMock  func()
		expectedCode int
		expectedBody *dto.SweepResponseDTO
	}{
		{
			name:   "Cron sweeps everything",
			method: http.MethodPost,
			target: "/api/referrals/complete-on-delivery",
			as:     asTrigger,
			prepareMock: func() {
				service.EXPECT().Sweep(gomock.Any(), (*uuid.UUID)(nil)).Return(&domain.SweepReport{
					Processed: 1,
					Completed: 1,
					Errors:    []string{},
					Details: []domain.SweepDetail{{
						ReferralID: referralID, ReferrerID: otherID, ReferredID: userID,
						Status: domain.SweepCompleted, Tier: domain.TierBronze, XPAwarded: 300,
					}},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.SweepResponseDTO{
				Processed: 1,
				Completed: 1,
				Errors:    []string{},
				Details: []dto.SweepDetailDTO{{
					ReferralID: referralID.String(), ReferrerID: otherID.String(), ReferredID: userID.String(),
					Status: domain.SweepCompleted, Tier: "bronze", XPAwarded: 300,
				}},
			},
		},
		{
			name:   "Cron filters by body user",
			method: http.MethodPost,
			target: "/api/referrals/complete-on-delivery",
			body:   `{"user_id": "` + otherID.String() + `"}`,
			as:     asTrigger,
			prepareMock: func() {
				service.EXPECT().Sweep(gomock.Any(), &otherID).Return(&domain.SweepReport{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.SweepResponseDTO{Errors: []string{}, Details: []dto.SweepDetailDTO{}},
		},
		{
			name:   "Manual GET with query filter",
			method: http.MethodGet,
			target: "/api/referrals/complete-on-delivery?user_id=" + otherID.String(),
			as:     asTrigger,
			prepareMock: func() {
				service.EXPECT().Sweep(gomock.Any(), &otherID).Return(&domain.SweepReport{Errors: []string{}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Bearer caller sweeps own referral",
			method: http.MethodPost,
			target: "/api/referrals/complete-on-delivery",
			as:     asUser,
			prepareMock: func() {
				service.EXPECT().Sweep(gomock.Any(), &userID).Return(&domain.SweepReport{Errors: []string{}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bearer caller sweeping someone else",
			method:       http.MethodPost,
			target:       "/api/referrals/complete-on-delivery",
			body:         `{"user_id": "` + otherID.String() + `"}`,
			as:           asUser,
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Invalid user id",
			method:       http.MethodPost,
			target:       "/api/referrals/complete-on-delivery",
			body:         `{"user_id": "nope"}`,
			as:           asTrigger,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed body",
			method:       http.MethodPost,
			target:       "/api/referrals/complete-on-delivery",
			body:         `{"user_id":`,
			as:           asTrigger,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "No caller identity",
			method:       http.MethodGet,
			target:       "/api/referrals/complete-on-delivery",
			as:           func(r *http.Request) *http.Request { return r },
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Sweep failure",
			method: http.MethodGet,
			target: "/api/referrals/complete-on-delivery",
			as:     asTrigger,
			prepareMock: func() {
				service.EXPECT().Sweep(gomock.Any(), (*uuid.UUID)(nil)).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			var reqBody io.Reader = http.NoBody
			if tt.body != "" {
				reqBody = bytes.NewBufferString(tt.body)
			}
			r := tt.as(httptest.NewRequest(tt.method, tt.target, reqBody))
			w := httptest.NewRecorder()

			handler.CompleteOnDelivery(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var got dto.SweepResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, *tt.expectedBody, got)
			}
		})
	}
}

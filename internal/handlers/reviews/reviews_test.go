package reviews

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gearxp/internal/domain"
	"github.com/GlebRadaev/gearxp/internal/dto"
	"github.com/GlebRadaev/gearxp/internal/service/reviewservice"
	"github.com/GlebRadaev/gearxp/internal/service/xpservice"
	"github.com/GlebRadaev/gearxp/pkg/auth"
)

var userID = uuid.MustParse("0b8d7c6e-1a2b-4c3d-8e9f-0a1b2c3d4e5f")

const validBody = `{"productId":"rgb-keyboard-tkl","rating":5,"title":"Great","content":"Quiet keys","authorName":"NightOwl","images":["a.png"]}`

func NewMock(t *testing.T) (*ReviewHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestSubmit(t *testing.T) {
	handler, service := NewMock(t)
	reviewID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.SubmitReviewResponseDTO
	}{
		{
			name: "Verified purchase",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), domain.ReviewInput{
					UserID:     userID,
					Email:      "gamer@example.com",
					ProductID:  "rgb-keyboard-tkl",
					Rating:     5,
					Title:      "Great",
					Content:    "Quiet keys",
					AuthorName: "NightOwl",
					Images:     []string{"a.png"},
				}).Return(&domain.ReviewResult{ReviewID: reviewID, XPAwarded: 50, VerifiedPurchase: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.SubmitReviewResponseDTO{
				Success:   true,
				ReviewID:  reviewID.String(),
				XPAwarded: 50,
				Message:   "Review submitted! You earned 50 XP for a verified purchase review.",
			},
		},
		{
			name: "Unverified purchase",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(&domain.ReviewResult{ReviewID: reviewID, XPAwarded: 25}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.SubmitReviewResponseDTO{
				Success:   true,
				ReviewID:  reviewID.String(),
				XPAwarded: 25,
				Message:   "Review submitted! You earned 25 XP.",
			},
		},
		{
			name:         "Invalid JSON",
			body:         `{"rating":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Rating out of range",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, reviewservice.ErrInvalidRating)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Already reviewed",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, reviewservice.ErrAlreadyReviewed)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Suspended profile",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(nil, errors.Join(errors.New("award"), xpservice.ErrProfileSuspended))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Service failure",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/reviews/submit", bytes.NewBufferString(tt.body))
			r = r.WithContext(auth.WithUser(r.Context(), userID, "gamer@example.com"))
			w := httptest.NewRecorder()

			handler.Submit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var got dto.SubmitReviewResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, *tt.expectedBody, got)
			}
		})
	}
}

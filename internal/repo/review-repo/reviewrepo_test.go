package reviewrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/gearxp/internal/domain"
)

func TestRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mock.Close)
	repo := New(mock)

	now := time.Now()
	userID := uuid.New()
	reviewID := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO reviews (user_id, product_id, rating, title, content, author_name, images, verified_purchase, xp_awarded, created_at)`)

	newReview := func() *domain.Review {
		return &domain.Review{
			UserID: userID, ProductID: "helmet-01", Rating: 5, Title: "Solid", Content: "Fits well",
			AuthorName: "Rider", Images: []string{"a.jpg"}, VerifiedPurchase: true, XPAwarded: 50, CreatedAt: now,
		}
	}
	args := []any{userID, "helmet-01", 5, "Solid", "Fits well", "Rider", []string{"a.jpg"}, true, int64(50), now}

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
		anyErr    bool
	}{
		{
			name: "Review saved",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(args...).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(reviewID))
			},
		},
		{
			name: "Duplicate review",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(args...).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: domain.ErrAlreadyExists,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(args...).
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), newReview())
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
			case tt.anyErr:
				assert.Error(t, err)
				assert.Nil(t, result)
			default:
				assert.NoError(t, err)
				assert.Equal(t, reviewID, result.ID)
			}
		})
	}
}

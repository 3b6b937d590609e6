package couponrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestRepository_MarkUsed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mock.Close)
	repo := New(mock)

	couponID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta(`UPDATE user_coupons SET is_used = TRUE, used_at = $3 WHERE id = $1 AND user_id = $2 AND is_used = FALSE`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		used      bool
	}{
		{
			name: "Coupon consumed",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(couponID, userID, now).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			used: true,
		},
		{
			name: "Coupon already used",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(couponID, userID, now).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(couponID, userID, now).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			used, err := repo.MarkUsed(context.Background(), couponID, userID, now)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.used, used)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

package profilerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/gearxp/internal/domain"
)

var profileCols = []string{
	"user_id", "email", "total_xp", "current_level", "current_streak", "longest_streak",
	"total_orders", "total_spent", "total_reviews", "total_referrals", "referral_count",
	"available_spins", "store_credit", "is_suspended", "last_purchase_at", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Ensure(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Creates or refreshes profile",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_profiles (user_id, email) VALUES ($1, NULLIF($2, '')) ON CONFLICT (user_id) DO UPDATE`)).
					WithArgs(userID, "gamer@example.com").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_profiles`)).
					WithArgs(userID, "gamer@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Ensure(context.Background(), userID, "gamer@example.com")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.UserProfile
	}{
		{
			name: "Profile found",
			mockSetup: func() {
				rows := pgxmock.NewRows(profileCols).
					AddRow(userID, "gamer@example.com", int64(250), 4, 2, 5, 3, 149.5, 1, 0, 0, 1, 0.0, false, &now, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM user_profiles WHERE user_id = $1 FOR UPDATE`)).
					WithArgs(userID).
					WillReturnRows(rows)
			},
			result: &domain.UserProfile{
				UserID: userID, Email: "gamer@example.com", TotalXP: 250, CurrentLevel: 4,
				CurrentStreak: 2, LongestStreak: 5, TotalOrders: 3, TotalSpent: 149.5, TotalReviews: 1,
				AvailableSpins: 1, LastPurchaseAt: &now, CreatedAt: now, UpdatedAt: now,
			},
		},
		{
			name: "Profile missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM user_profiles WHERE user_id = $1 FOR UPDATE`)).
					WithArgs(userID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM user_profiles WHERE user_id = $1 FOR UPDATE`)).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetForUpdate(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows(profileCols).
		AddRow(userID, "", int64(0), 1, 0, 0, 0, 0.0, 0, 0, 0, 0, 0.0, false, &now, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM user_profiles WHERE user_id = $1`)).
		WithArgs(userID).
		WillReturnRows(rows)

	result, err := repo.Get(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.CurrentLevel)
	assert.Equal(t, int64(0), result.TotalXP)
}

func TestRepository_ApplyAward(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()
	delta := domain.ProfileDelta{Orders: 1, Spent: 80, LastPurchaseAt: &now}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Updates profile",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE user_profiles SET total_xp = $2, current_level = $3, total_orders = total_orders + $4`)).
					WithArgs(userID, int64(330), 4, 1, 80.0, 0, 0, &now, now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Profile vanished",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE user_profiles`)).
					WithArgs(userID, int64(330), 4, 1, 80.0, 0, 0, &now, now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE user_profiles`)).
					WithArgs(userID, int64(330), 4, 1, 80.0, 0, 0, &now, now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.ApplyAward(context.Background(), userID, 330, 4, delta, now)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

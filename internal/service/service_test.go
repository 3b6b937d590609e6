package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gearxp/internal/pg"
	"github.com/GlebRadaev/gearxp/internal/repo"
	"github.com/GlebRadaev/gearxp/internal/service/referralservice"
	"github.com/GlebRadaev/gearxp/internal/service/reviewservice"
	"github.com/GlebRadaev/gearxp/internal/service/rewardservice"
	"github.com/GlebRadaev/gearxp/internal/service/xpservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	services := New(repo.New(mockDB), pg.NewMockTXManager(ctrl), xpservice.NewMockNotifier(ctrl))

	assert.IsType(t, &xpservice.Service{}, services.XPService)
	assert.IsType(t, &rewardservice.Service{}, services.RewardService)
	assert.IsType(t, &referralservice.Service{}, services.ReferralService)
	assert.IsType(t, &reviewservice.Service{}, services.ReviewService)
	assert.Same(t, services.ReferralService, services.SweepService)
}

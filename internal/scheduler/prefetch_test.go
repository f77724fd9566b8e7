package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bsocial/adhub-api/internal/config"
	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/internal/usecases/insighting"
	"github.com/bsocial/adhub-api/internal/usecases/insighting/mocks"
	"github.com/bsocial/adhub-api/pkg/daterange"
)

func prefetchConfig() *config.Config {
	return &config.Config{Prefetch: config.Prefetch{
		CronSchedule: "*/10 * * * *",
		AccountIDs:   []string{"act_1", "act_2"},
		AccessToken:  "tok",
		Enabled:      true,
	}}
}

func TestPrefetchService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	insighter := mocks.NewMockInsighter(ctrl)

	matchReq := gomock.Cond(func(x any) bool {
		req := x.(domain.InsightRequest)
		return req.Token == "tok" && len(req.AccountIDs) == 2 && req.Selection.Preset == daterange.Last7d
	})
	bypass := gomock.Cond(func(x any) bool {
		return insighting.IsBypassingCache(x.(context.Context))
	})

	insighter.EXPECT().FetchAccountInsights(bypass, matchReq).Return(domain.Metrics{}, nil)
	insighter.EXPECT().FetchDailyAccountInsights(bypass, matchReq).Return(nil, errors.New("meta fora do ar"))
	insighter.EXPECT().FetchCampaignsWithInsights(bypass, matchReq).Return(domain.Page[domain.Campaign]{}, nil)
	insighter.EXPECT().FetchTrend(bypass, matchReq).Return(domain.Trend{}, nil)

	s := NewPrefetchService(insighter, prefetchConfig())
	s.Run(context.Background())

	status := s.GetStatus()
	assert.Equal(t, 1, status["last_prefetch_failures"])
	assert.Equal(t, false, status["prefetch_running"])
}

func TestPrefetchService_StartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := prefetchConfig()
	cfg.Prefetch.Enabled = false

	s := NewPrefetchService(mocks.NewMockInsighter(ctrl), cfg)
	assert.NoError(t, s.Start(context.Background()))
	assert.Equal(t, 0, s.scheduler.Len())
}

func TestPrefetchService_StartAgenda(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewPrefetchService(mocks.NewMockInsighter(ctrl), prefetchConfig())
	assert.NoError(t, s.Start(ctx))
	assert.Equal(t, 1, s.scheduler.Len())
}

func TestPrefetchService_CronInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := prefetchConfig()
	cfg.Prefetch.CronSchedule = "todo dia"

	s := NewPrefetchService(mocks.NewMockInsighter(ctrl), cfg)
	assert.Error(t, s.Start(context.Background()))
}

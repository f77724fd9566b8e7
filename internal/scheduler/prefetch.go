package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/bsocial/adhub-api/internal/config"
	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/internal/usecases/insighting"
	"github.com/bsocial/adhub-api/pkg/daterange"
)

// PrefetchService aquece periodicamente o cache das consultas do painel
// para as contas configuradas.
type PrefetchService struct {
	scheduler       *gocron.Scheduler
	config          config.Prefetch
	insighter       insighting.Insighter
	running         bool
	mu              sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastFailures    int
}

func NewPrefetchService(insighter insighting.Insighter, appConfig *config.Config) *PrefetchService {
	cfg := appConfig.Prefetch
	if cfg.Preset == "" {
		cfg.Preset = string(daterange.Last7d)
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"accounts":      len(cfg.AccountIDs),
		"preset":        cfg.Preset,
		"enabled":       cfg.Enabled,
	}).Info("Configuração do pré-carregamento de insights carregada")

	return &PrefetchService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		insighter: insighter,
	}
}

// Start agenda o pré-carregamento. Não faz nada quando desabilitado ou sem contas/token.
func (s *PrefetchService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Pré-carregamento de insights desabilitado por configuração")
		return nil
	}
	if len(s.config.AccountIDs) == 0 || s.config.AccessToken == "" {
		logrus.Warn("Pré-carregamento habilitado sem contas ou token, ignorando")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de pré-carregamento de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pré-carregamento de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de pré-carregamento de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa um ciclo de pré-carregamento. Execuções concorrentes são ignoradas.
func (s *PrefetchService) Run(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Pré-carregamento de insights já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	failures := s.warm(insighting.WithBypassCache(ctx))

	s.mu.Lock()
	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastFailures = failures
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(s.lastStartedAt).String(),
		"accounts": len(s.config.AccountIDs),
		"failures": failures,
	}).Info("Pré-carregamento de insights concluído")
}

// warm refaz as consultas da tela inicial do painel e retorna quantas falharam.
func (s *PrefetchService) warm(ctx context.Context) int {
	req := domain.InsightRequest{
		AccountIDs: s.config.AccountIDs,
		Token:      s.config.AccessToken,
		Selection:  daterange.Selection{Preset: daterange.Preset(s.config.Preset)},
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"totals", func() error { _, err := s.insighter.FetchAccountInsights(ctx, req); return err }},
		{"daily", func() error { _, err := s.insighter.FetchDailyAccountInsights(ctx, req); return err }},
		{"campaigns", func() error { _, err := s.insighter.FetchCampaignsWithInsights(ctx, req); return err }},
		{"trend", func() error { _, err := s.insighter.FetchTrend(ctx, req); return err }},
	}

	failures := 0
	for _, step := range steps {
		if err := step.run(); err != nil {
			failures++
			logrus.WithFields(logrus.Fields{
				"step":  step.name,
				"error": err.Error(),
			}).Error("Erro ao pré-carregar insights")
		}
	}

	return failures
}

// TriggerManualSync inicia manualmente um ciclo de pré-carregamento
func (s *PrefetchService) TriggerManualSync(ctx context.Context) {
	logrus.Info("Iniciando pré-carregamento manual de insights")
	go s.Run(context.WithoutCancel(ctx))
}

// GetStatus retorna o status atual do agendador
func (s *PrefetchService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"prefetch_enabled":           s.config.Enabled,
		"prefetch_cron":              s.config.CronSchedule,
		"prefetch_preset":            s.config.Preset,
		"prefetch_accounts":          len(s.config.AccountIDs),
		"prefetch_running":           s.running,
		"last_prefetch_started_at":   s.lastStartedAt,
		"last_prefetch_completed_at": s.lastCompletedAt,
		"last_prefetch_failures":     s.lastFailures,
	}
}

package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bsocial/adhub-api/infrastructure/cache/rediscache"
	"github.com/bsocial/adhub-api/infrastructure/database/postgres"
	"github.com/bsocial/adhub-api/infrastructure/integrator/gemini"
	"github.com/bsocial/adhub-api/infrastructure/integrator/meta"
	"github.com/bsocial/adhub-api/infrastructure/integrator/meta/metaclient"
	"github.com/bsocial/adhub-api/infrastructure/repository"
	"github.com/bsocial/adhub-api/internal/api"
	"github.com/bsocial/adhub-api/internal/api/handler"
	"github.com/bsocial/adhub-api/internal/config"
	"github.com/bsocial/adhub-api/internal/scheduler"
	"github.com/bsocial/adhub-api/internal/usecases/auditing"
	"github.com/bsocial/adhub-api/internal/usecases/authenticating"
	"github.com/bsocial/adhub-api/internal/usecases/insighting"
	"github.com/bsocial/adhub-api/internal/usecases/managing"
	"github.com/bsocial/adhub-api/internal/usecases/querying"
	"github.com/bsocial/adhub-api/pkg/cache"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	profileRepo := repository.NewProfileRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, profileRepo, cfg)

	store, closeStore := resultCache(ctx, cfg.Cache)
	defer closeStore()

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	insightService := insighting.NewService(cfg, metaIntegrator, store)

	queries := querying.NewManager(cfg)
	refresher := querying.NewAutoRefresher(queries)
	refresher.Start(ctx)

	mutationService := managing.NewService(metaIntegrator, insightService, queries)
	auditService := auditing.NewService(gemini.NewClient(cfg), insightService)

	prefetchService := scheduler.NewPrefetchService(insightService, cfg)
	if err := prefetchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de pré-carregamento de insights")
	}

	server, err := api.New(cfg, api.Services{
		Insights:      handler.NewInsightHandlers(insightService, queries, refresher),
		Mutations:     mutationService,
		Auditor:       auditService,
		Authenticator: authenticator,
		Prefetcher:    prefetchService,
		Database:      pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// resultCache escolhe o backend do cache de resultados. Sem Redis disponível,
// cai para o cache em memória.
func resultCache(ctx context.Context, cfg config.Cache) (cache.Store, func()) {
	if cfg.Backend == "redis" {
		store, err := rediscache.NewFromURL(ctx, cfg.RedisURL, cfg.TTL, cfg.Namespace)
		if err == nil {
			logrus.WithField("namespace", cfg.Namespace).Info("Cache de resultados no Redis")
			return store, func() { _ = store.Close() }
		}
		logrus.WithError(err).Warn("Redis indisponível, usando cache em memória")
	}

	logrus.WithFields(logrus.Fields{
		"ttl":         cfg.TTL.String(),
		"max_entries": cfg.MaxEntries,
	}).Info("Cache de resultados em memória")

	return cache.NewMemory(cfg.TTL, cache.WithMaxEntries(cfg.MaxEntries)), func() {}
}

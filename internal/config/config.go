package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Meta     Meta     `mapstructure:",squash"`
	Cache    Cache    `mapstructure:",squash"`
	Fetch    Fetch    `mapstructure:",squash"`
	Query    Query    `mapstructure:",squash"`
	AI       AI       `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	Prefetch Prefetch `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

type Meta struct {
	BaseURL           string        `mapstructure:"meta_base_url"`
	URL               string        `mapstructure:"meta_url"`
	Version           string        `mapstructure:"meta_version"`
	RequestTimeout    time.Duration `mapstructure:"meta_request_timeout"`
	RequestsPerSecond float64       `mapstructure:"meta_requests_per_second"`
	RequestBurst      int           `mapstructure:"meta_request_burst"`
	BreakerTimeout    time.Duration `mapstructure:"meta_breaker_timeout"`
}

// Cache controla o armazenamento de resultados das consultas ao Meta.
type Cache struct {
	Backend    string        `mapstructure:"cache_backend"` // memory ou redis
	TTL        time.Duration `mapstructure:"cache_ttl"`
	MaxEntries int           `mapstructure:"cache_max_entries"`
	RedisURL   string        `mapstructure:"cache_redis_url"`
	Namespace  string        `mapstructure:"cache_namespace"`
}

// Fetch agrupa os limites de paginação da Graph API.
// MaxRawRecords protege a memória em contas com dezenas de milhares de anúncios
// e MaxDisplayRecords limita as listagens exibidas no painel.
type Fetch struct {
	MaxRawRecords     int `mapstructure:"fetch_max_raw_records"`
	MaxDisplayRecords int `mapstructure:"fetch_max_display_records"`
	PageSize          int `mapstructure:"fetch_page_size"`
	CreativeBatchSize int `mapstructure:"fetch_creative_batch_size"`
}

type Query struct {
	StaleTime    time.Duration `mapstructure:"query_stale_time"`
	FetchTimeout time.Duration `mapstructure:"query_fetch_timeout"`
	IdleTTL      time.Duration `mapstructure:"query_idle_ttl"`
}

type AI struct {
	BaseURL string        `mapstructure:"ai_base_url"`
	APIKey  string        `mapstructure:"ai_api_key"`
	Model   string        `mapstructure:"ai_model"`
	Timeout time.Duration `mapstructure:"ai_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Prefetch aquece o cache periodicamente para contas configuradas.
type Prefetch struct {
	CronSchedule string   `mapstructure:"prefetch_cron"`
	AccountIDs   []string `mapstructure:"prefetch_account_ids"`
	AccessToken  string   `mapstructure:"prefetch_access_token"`
	Preset       string   `mapstructure:"prefetch_preset"`
	Enabled      bool     `mapstructure:"prefetch_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adhub?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("META_REQUESTS_PER_SECOND", 20) // Limite conservador da Graph API por usuário
	viper.SetDefault("META_REQUEST_BURST", 40)
	viper.SetDefault("META_BREAKER_TIMEOUT", "1m")

	viper.SetDefault("CACHE_BACKEND", "memory")
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("CACHE_MAX_ENTRIES", 5000)
	viper.SetDefault("CACHE_REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CACHE_NAMESPACE", "adhub")

	viper.SetDefault("FETCH_MAX_RAW_RECORDS", 50000)
	viper.SetDefault("FETCH_MAX_DISPLAY_RECORDS", 2000)
	viper.SetDefault("FETCH_PAGE_SIZE", 500)
	viper.SetDefault("FETCH_CREATIVE_BATCH_SIZE", 50) // Limite de ids por chamada multi-get

	viper.SetDefault("QUERY_STALE_TIME", "1m")
	viper.SetDefault("QUERY_FETCH_TIMEOUT", "2m")
	viper.SetDefault("QUERY_IDLE_TTL", "30m")

	viper.SetDefault("AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("AI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("AI_TIMEOUT", "60s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("PREFETCH_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("PREFETCH_PRESET", "last_7d")
	viper.SetDefault("PREFETCH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

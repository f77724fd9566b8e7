package main

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bsocial/adhub-api/infrastructure/database/postgres"
	"github.com/bsocial/adhub-api/infrastructure/repository"
	"github.com/bsocial/adhub-api/internal/config"
	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/internal/usecases/authenticating"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            VARCHAR(36) PRIMARY KEY,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id         VARCHAR(36) PRIMARY KEY REFERENCES users (id) ON DELETE CASCADE,
		full_name  VARCHAR(255) NOT NULL,
		role       VARCHAR(16) NOT NULL DEFAULT 'client',
		active     BOOLEAN NOT NULL DEFAULT TRUE,
		config     JSONB NOT NULL DEFAULT '{}'::jsonb,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS profiles_role_idx ON profiles (role)`,
}

func createSchema(ctx context.Context, conn *postgres.Connection) error {
	return conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for i, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return err
			}
			logrus.Debugf("Comando %d/%d aplicado", i+1, len(schema))
		}
		return nil
	})
}

// seedAdmin cria o primeiro administrador quando ADMIN_EMAIL está definido.
// Sem ADMIN_PASSWORD a senha é gerada e exibida uma única vez.
func seedAdmin(ctx context.Context, conn *postgres.Connection, cfg *config.Config) error {
	viper.SetDefault("ADMIN_NAME", "Administrador")

	email := viper.GetString("ADMIN_EMAIL")
	if email == "" {
		logrus.Info("ADMIN_EMAIL não definido, nenhum administrador criado")
		return nil
	}

	service := authenticating.NewService(
		repository.NewUserRepository(conn),
		repository.NewProfileRepository(conn),
		cfg,
	)

	res, err := service.CreateUser(ctx, domain.CreateUserRequest{
		Email:    email,
		Password: viper.GetString("ADMIN_PASSWORD"),
		FullName: viper.GetString("ADMIN_NAME"),
		Role:     domain.RoleAdmin,
	})
	if errors.Is(err, authenticating.ErrUserAlreadyExists) {
		logrus.WithField("email", email).Info("Administrador já existe")
		return nil
	}
	if err != nil {
		return err
	}

	entry := logrus.WithField("user_id", res.User.ID)
	if res.GeneratedPassword != "" {
		entry = entry.WithField("password", res.GeneratedPassword)
	}
	entry.Info("Administrador criado")

	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	startTime := time.Now()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := createSchema(ctx, conn); err != nil {
		logrus.Fatalf("ERRO ao criar schema: %v", err)
	}
	logrus.Infof("Schema aplicado com %d comandos", len(schema))

	if err := seedAdmin(ctx, conn, cfg); err != nil {
		logrus.Fatalf("ERRO ao criar administrador: %v", err)
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}

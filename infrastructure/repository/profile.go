package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bsocial/adhub-api/infrastructure/database/postgres"
	"github.com/bsocial/adhub-api/internal/domain"
)

//go:generate mockgen -source=profile.go -destination=mocks/profile_mock.go -package=mocks

// ProfileRepository guarda o papel, o status e a UserConfig de cada usuário.
type ProfileRepository interface {
	UpdateConfig(ctx context.Context, userID string, config domain.UserConfig) error
	SetActive(ctx context.Context, userID string, active bool) error
}

type profileRepository struct {
	conn postgres.Queryer
	now  func() time.Time
}

func NewProfileRepository(conn postgres.Queryer) ProfileRepository {
	return &profileRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *profileRepository) UpdateConfig(ctx context.Context, userID string, config domain.UserConfig) error {
	raw, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("erro ao serializar configuração: %w", err)
	}

	return r.update(ctx, userID, map[string]any{"config": raw})
}

func (r *profileRepository) SetActive(ctx context.Context, userID string, active bool) error {
	return r.update(ctx, userID, map[string]any{"active": active})
}

func (r *profileRepository) update(ctx context.Context, userID string, values map[string]any) error {
	query, args, err := squirrel.
		Update(profilesTable).
		SetMap(values).
		Set("updated_at", r.now()).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar perfil: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/bsocial/adhub-api/infrastructure/database/postgres"
	"github.com/bsocial/adhub-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	usersTable    = "users"
	profilesTable = "profiles"
)

var ErrNotFound = errors.New("registro não encontrado")

var userColumns = []string{
	"u.id", "u.email", "u.password_hash", "p.full_name", "p.role", "p.active", "p.config", "u.created_at", "p.updated_at",
}

//go:generate mockgen -source=user.go -destination=mocks/user_mock.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userRepository struct {
	conn postgres.Conn
}

func NewUserRepository(conn postgres.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// CreateUser grava as credenciais e o perfil na mesma transação.
func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	config, err := json.Marshal(user.Config)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar configuração: %w", err)
	}

	err = r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		usersSQL, usersArgs, err := squirrel.
			Insert(usersTable).
			Columns("id", "email", "password_hash").
			Values(user.ID, user.Email, user.PasswordHash).
			Suffix("RETURNING created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if err := q.QueryRow(ctx, usersSQL, usersArgs...).Scan(&user.CreatedAt); err != nil {
			return fmt.Errorf("erro ao inserir usuário: %w", err)
		}

		profileSQL, profileArgs, err := squirrel.
			Insert(profilesTable).
			Columns("id", "full_name", "role", "active", "config").
			Values(user.ID, user.FullName, user.Role, user.Active, config).
			Suffix("RETURNING updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if err := q.QueryRow(ctx, profileSQL, profileArgs...).Scan(&user.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao inserir perfil: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByEmail retorna nil, nil quando o e-mail não existe.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := r.getOne(ctx, squirrel.Eq{"u.email": email})
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return user, err
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.id": userID})
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	query, args, err := selectUsers().
		OrderBy("p.full_name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = ""
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// DeleteUser remove o perfil e as credenciais.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for _, table := range []string{profilesTable, usersTable} {
			query, args, err := squirrel.
				Delete(table).
				Where(squirrel.Eq{"id": userID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			res, err := q.Exec(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("erro ao remover de %s: %w", table, err)
			}

			if n, _ := res.RowsAffected(); n == 0 && table == usersTable {
				return ErrNotFound
			}
		}

		logrus.WithField("user_id", userID).Info("Usuário removido")
		return nil
	})
}

func (r *userRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.User, error) {
	query, args, err := selectUsers().Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn.QueryRow(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func selectUsers() squirrel.SelectBuilder {
	return squirrel.
		Select(userColumns...).
		From(usersTable + " u").
		Join(profilesTable + " p ON p.id = u.id").
		PlaceholderFormat(squirrel.Dollar)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*domain.User, error) {
	var (
		user   domain.User
		config []byte
	)

	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Role,
		&user.Active,
		&config,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(config) > 0 {
		if err := json.Unmarshal(config, &user.Config); err != nil {
			logrus.Warnf("Configuração inválida para o usuário %s: %v", user.ID, err)
		}
	}

	return &user, nil
}

package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsocial/adhub-api/infrastructure/database/postgres"
	"github.com/bsocial/adhub-api/internal/domain"
)

func newMock(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return postgres.NewFromDB(db), mock
}

var userRowColumns = []string{"id", "email", "password_hash", "full_name", "role", "active", "config", "created_at", "updated_at"}

const selectUserSQL = "SELECT u.id, u.email, u.password_hash, p.full_name, p.role, p.active, p.config, u.created_at, p.updated_at FROM users u JOIN profiles p ON p.id = u.id"

func TestGetUserByEmail(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL + " WHERE u.email = $1")).
		WithArgs("ana@bsocial.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(
			"u1", "ana@bsocial.com", "hash", "Ana", "client", true,
			[]byte(`{"ad_account_ids":["act_1"],"spend_multiplier":1.2,"allowed_features":["dashboard"]}`),
			now, now,
		))

	user, err := repo.GetUserByEmail(context.Background(), "ana@bsocial.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.Equal(t, []string{"act_1"}, user.Config.AdAccountIDs)
	assert.Equal(t, 1.2, user.Config.SpendMultiplier)
	assert.True(t, user.Config.HasFeature(domain.FeatureDashboard))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NaoEncontrado(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL + " WHERE u.email = $1")).
		WithArgs("x@y.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByEmail(context.Background(), "x@y.com")
	assert.NoError(t, err)
	assert.Nil(t, user)

	_, err = repo.GetUserByID(context.Background(), "nope")
	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (id,email,password_hash) VALUES ($1,$2,$3) RETURNING created_at")).
		WithArgs("u1", "ana@bsocial.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles (id,full_name,role,active,config) VALUES ($1,$2,$3,$4,$5) RETURNING updated_at")).
		WithArgs("u1", "Ana", "client", true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
	mock.ExpectCommit()

	user, err := repo.CreateUser(context.Background(), &domain.User{
		ID:           "u1",
		Email:        "ana@bsocial.com",
		PasswordHash: "hash",
		FullName:     "Ana",
		Role:         domain.RoleClient,
		Active:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_RollbackNoPerfil(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectQuery("INSERT INTO profiles").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := repo.CreateUser(context.Background(), &domain.User{ID: "u1"})
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	t.Run("Remove perfil e credenciais", func(t *testing.T) {
		conn, mock := newMock(t)
		repo := NewUserRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM profiles WHERE id = $1")).WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.DeleteUser(context.Background(), "u1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		conn, mock := newMock(t)
		repo := NewUserRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM profiles").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.DeleteUser(context.Background(), "u9"), ErrNotFound)
	})
}

func TestProfileRepository(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewProfileRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE profiles SET active = $1, updated_at = $2 WHERE id = $3")).
		WithArgs(false, sqlmock.AnyArg(), "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetActive(context.Background(), "u1", false))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE profiles SET config = $1, updated_at = $2 WHERE id = $3")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "u2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateConfig(context.Background(), "u2", domain.UserConfig{HideTotalSpend: true})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/internal/repository"
	"github.com/limbo/mindshelter/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := entity.User{
		Email:    "student@example.edu",
		FullName: "Test Student",
	}
	query := regexp.QuoteMeta(`INSERT INTO users (email, full_name) VALUES ($1, $2) RETURNING id, created_at;`)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Email, user.FullName).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), time.Now()))
		err := repo.Create(ctx, &user)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.UUID{}, user.ID)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Email, user.FullName).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Email, user.FullName).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user)
		assert.Error(t, err)
	})
}

func TestFindByEmail(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:        uuid.New(),
		Email:     "student@example.edu",
		FullName:  "Test Student",
		CreatedAt: time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT id, email, full_name, created_at FROM users WHERE email = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "full_name", "created_at"}).
				AddRow(user.ID, user.Email, user.FullName, user.CreatedAt))
		result, err := repo.FindByEmail(ctx, user.Email)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.Error(t, err)
	})
}

func TestFindByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:        uuid.New(),
		Email:     "student@example.edu",
		FullName:  "Test Student",
		CreatedAt: time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT id, email, full_name, created_at FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "full_name", "created_at"}).
				AddRow(user.ID, user.Email, user.FullName, user.CreatedAt))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByID(ctx, user.ID)
		assert.Error(t, err)
	})
}

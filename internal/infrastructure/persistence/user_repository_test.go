package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bazaar/backend/internal/domain/identity"
	"github.com/bazaar/backend/internal/domain/shared"
)

// newMockDB creates a GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func userColumns() []string {
	return []string{
		"id", "created_at", "updated_at",
		"username", "email", "email_verified", "password",
		"full_name", "birth_date", "role_id",
	}
}

func TestGormUserRepository_FindByID(t *testing.T) {
	t.Run("finds existing user", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		now := time.Now()
		birth := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(userColumns()).
			AddRow(int64(1), now, now, "alice", "alice@example.com", true, "$2a$10$hash", nil, birth, int64(2))

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(1), 1).
			WillReturnRows(rows)

		user, err := repo.FindByID(context.Background(), 1)

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, int64(2), user.RoleID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing user", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(42), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		user, err := repo.FindByID(context.Background(), 42)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserRepository_FindByUsername(t *testing.T) {
	t.Run("finds user by username", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		now := time.Now()
		birth := time.Date(1985, 1, 30, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(userColumns()).
			AddRow(int64(7), now, now, "bob", "bob@example.com", false, "$2a$10$hash", nil, birth, int64(1))

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("bob", 1).
			WillReturnRows(rows)

		user, err := repo.FindByUsername(context.Background(), "bob")

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "bob@example.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserRepository_Create(t *testing.T) {
	t.Run("maps unique violation to ErrAlreadyExists", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{
				Code:           UniqueViolationCode,
				ConstraintName: "idx_users_username",
			})

		user := &identity.User{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$hash",
			BirthDate:    time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
			RoleID:       1,
		}

		err := repo.Create(context.Background(), user)

		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)

		var ie *shared.IntegrityError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "idx_users_username", ie.Constraint)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserRepository_ExistsByUsername(t *testing.T) {
	t.Run("returns true when user exists", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE username = \$1`).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

		exists, err := repo.ExistsByUsername(context.Background(), "alice")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when user does not exist", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE username = \$1`).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

		exists, err := repo.ExistsByUsername(context.Background(), "ghost")

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserRepository_Delete(t *testing.T) {
	t.Run("returns ErrNotFound when nothing deleted", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps restrict violation to IntegrityError", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1`).
			WithArgs(int64(5)).
			WillReturnError(&pgconn.PgError{
				Code:           ForeignKeyViolationCode,
				ConstraintName: "orders_user_id_fkey",
			})

		err := repo.Delete(context.Background(), 5)

		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrInvalidState)

		var ie *shared.IntegrityError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "orders_user_id_fkey", ie.Constraint)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

package user_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/deployappsa/absensi/internal/user"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return db, mock
}

func TestRepository_FindByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := user.NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "password", "name", "role"}).
		AddRow(1, "admin", "$2a$10$hash", "Admin User", "admin")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("admin", 1).
		WillReturnRows(rows)

	u, err := repo.FindByUsername(context.Background(), "admin")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)
	assert.Equal(t, "Admin User", u.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := user.NewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := user.NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "name", "role"}).
		AddRow(1, "admin", "Admin User", "admin").
		AddRow(2, "budi", "Budi", "employee")
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(rows)

	list, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

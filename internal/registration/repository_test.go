package registration

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestCreateRegistrationRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`INSERT INTO registrations.*`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "class_id", "status", "registered_at"}).
			AddRow(1, 1, 2, "active", time.Now()))

	reg, err := repo.Create(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, StatusActive, reg.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT EXISTS\(.*FROM registrations.*`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	has, err := repo.HasActive(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelNoActiveRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectExec(`UPDATE registrations.*`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Cancel(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNoActiveRegistration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelActiveRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectExec(`UPDATE registrations.*`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Cancel(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT class_id, COUNT\(\*\) AS active_count.*`).
		WillReturnRows(sqlmock.NewRows([]string{"class_id", "active_count"}).
			AddRow(1, 10).
			AddRow(2, 3))

	counts, err := repo.ActiveCounts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[int]int{1: 10, 2: 3}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

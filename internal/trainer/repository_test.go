package trainer

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestCreateTrainer(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`INSERT INTO trainers.*`).
		WithArgs("Sam", "yoga").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "specialization", "created_at"}).
			AddRow(1, "Sam", "yoga", time.Now()))

	tr, err := repo.Create(context.Background(), "Sam", "yoga")
	assert.NoError(t, err)
	assert.Equal(t, 1, tr.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrainerByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT id, name, specialization, created_at FROM trainers WHERE id = \$1`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "specialization", "created_at"}))

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTrainerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddWindowRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	mock.ExpectQuery(`INSERT INTO availability_windows.*`).
		WithArgs(1, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trainer_id", "start_time", "end_time", "created_at"}).
			AddRow(1, 1, start, end, time.Now()))

	w, err := repo.AddWindow(context.Background(), 1, start, end)
	assert.NoError(t, err)
	assert.Equal(t, 1, w.TrainerID)
	assert.Equal(t, start, w.StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWindows(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, trainer_id, start_time, end_time, created_at FROM availability_windows.*`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trainer_id", "start_time", "end_time", "created_at"}).
			AddRow(1, 1, start, start.Add(time.Hour), time.Now()).
			AddRow(2, 1, start.Add(2*time.Hour), start.Add(3*time.Hour), time.Now()))

	windows, err := repo.GetWindows(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, windows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

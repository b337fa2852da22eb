package session

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func sessionColumns() []string {
	return []string{"id", "trainer_id", "member_id", "start_time", "end_time", "created_at"}
}

func TestRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectQuery("INSERT INTO pt_sessions").
		WithArgs(1, 2, start, end).
		WillReturnRows(sqlmock.NewRows(sessionColumns()).
			AddRow(7, 1, 2, start, end, time.Now()))

	pt, err := repo.Create(context.Background(), 1, 2, start, end)
	require.NoError(t, err)
	assert.Equal(t, 7, pt.ID)
	assert.Equal(t, 1, pt.TrainerID)
	assert.Equal(t, 2, pt.MemberID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByTrainer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM pt_sessions").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(sessionColumns()).
			AddRow(7, 1, 2, start, start.Add(time.Hour), time.Now()).
			AddRow(8, 1, 3, start.Add(2*time.Hour), start.Add(3*time.Hour), time.Now()))

	sessions, err := repo.GetByTrainer(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, 8, sessions[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM pt_sessions").
		WillReturnRows(sqlmock.NewRows(sessionColumns()))

	sessions, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

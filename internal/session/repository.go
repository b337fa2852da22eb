package session

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, trainerID, memberID int, start, end time.Time) (*PTSession, error) {
	query := `
		INSERT INTO pt_sessions (trainer_id, member_id, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, trainer_id, member_id, start_time, end_time, created_at
	`

	var s PTSession
	err := r.db.GetContext(ctx, &s, query, trainerID, memberID, start, end)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetAll(ctx context.Context) ([]PTSession, error) {
	query := `
		SELECT id, trainer_id, member_id, start_time, end_time, created_at
		FROM pt_sessions
		ORDER BY start_time ASC
	`

	var sessions []PTSession
	err := r.db.SelectContext(ctx, &sessions, query)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *repository) GetByTrainer(ctx context.Context, trainerID int) ([]PTSession, error) {
	query := `
		SELECT id, trainer_id, member_id, start_time, end_time, created_at
		FROM pt_sessions
		WHERE trainer_id = $1
		ORDER BY start_time ASC
	`

	var sessions []PTSession
	err := r.db.SelectContext(ctx, &sessions, query, trainerID)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

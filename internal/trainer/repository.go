package trainer

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrTrainerNotFound = errors.New("trainer not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, specialization string) (*Trainer, error) {
	query := `
		INSERT INTO trainers (name, specialization)
		VALUES ($1, $2)
		RETURNING id, name, specialization, created_at
	`

	var tr Trainer
	err := r.db.GetContext(ctx, &tr, query, name, specialization)
	if err != nil {
		return nil, err
	}

	return &tr, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT id, name, specialization, created_at
		FROM trainers
		WHERE id = $1
	`

	var tr Trainer
	err := r.db.GetContext(ctx, &tr, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	return &tr, nil
}

func (r *repository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM trainers WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) AddWindow(ctx context.Context, trainerID int, start, end time.Time) (*AvailabilityWindow, error) {
	query := `
		INSERT INTO availability_windows (trainer_id, start_time, end_time)
		VALUES ($1, $2, $3)
		RETURNING id, trainer_id, start_time, end_time, created_at
	`

	var w AvailabilityWindow
	err := r.db.GetContext(ctx, &w, query, trainerID, start, end)
	if err != nil {
		return nil, err
	}

	return &w, nil
}

func (r *repository) GetWindows(ctx context.Context, trainerID int) ([]AvailabilityWindow, error) {
	query := `
		SELECT id, trainer_id, start_time, end_time, created_at
		FROM availability_windows
		WHERE trainer_id = $1
		ORDER BY start_time ASC
	`

	var windows []AvailabilityWindow
	err := r.db.SelectContext(ctx, &windows, query, trainerID)
	if err != nil {
		return nil, err
	}

	return windows, nil
}

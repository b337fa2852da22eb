package class

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrClassNotFound = errors.New("class not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name string, trainerID, roomID int, start, end time.Time, capacity int) (*GroupClass, error) {
	query := `
		INSERT INTO group_classes (name, trainer_id, room_id, start_time, end_time, capacity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, trainer_id, room_id, start_time, end_time, capacity, created_at
	`

	var gc GroupClass
	err := r.db.GetContext(ctx, &gc, query, name, trainerID, roomID, start, end, capacity)
	if err != nil {
		return nil, err
	}

	return &gc, nil
}

func (r *repository) Update(ctx context.Context, id int, name string, trainerID, roomID int, start, end time.Time, capacity int) (*GroupClass, error) {
	query := `
		UPDATE group_classes
		SET name = $2, trainer_id = $3, room_id = $4, start_time = $5, end_time = $6, capacity = $7
		WHERE id = $1
		RETURNING id, name, trainer_id, room_id, start_time, end_time, capacity, created_at
	`

	var gc GroupClass
	err := r.db.GetContext(ctx, &gc, query, id, name, trainerID, roomID, start, end, capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	return &gc, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*GroupClass, error) {
	query := `
		SELECT id, name, trainer_id, room_id, start_time, end_time, capacity, created_at
		FROM group_classes
		WHERE id = $1
	`

	var gc GroupClass
	err := r.db.GetContext(ctx, &gc, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	return &gc, nil
}

func (r *repository) GetAll(ctx context.Context) ([]GroupClass, error) {
	query := `
		SELECT id, name, trainer_id, room_id, start_time, end_time, capacity, created_at
		FROM group_classes
		ORDER BY start_time ASC
	`

	var classes []GroupClass
	err := r.db.SelectContext(ctx, &classes, query)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) GetAllWithAvailability(ctx context.Context) ([]ClassWithAvailability, error) {
	query := `
		SELECT
			gc.id,
			gc.name,
			gc.trainer_id,
			gc.room_id,
			gc.start_time,
			gc.end_time,
			gc.capacity,
			gc.created_at,
			COUNT(r.id) FILTER (WHERE r.status = 'active') AS registered_count
		FROM group_classes gc
		LEFT JOIN registrations r ON r.class_id = gc.id
		GROUP BY gc.id
		ORDER BY gc.start_time ASC
	`

	rows := []struct {
		GroupClass
		RegisteredCount int `db:"registered_count"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	result := make([]ClassWithAvailability, 0, len(rows))
	for _, row := range rows {
		available := row.Capacity - row.RegisteredCount
		result = append(result, ClassWithAvailability{
			GroupClass:      row.GroupClass,
			RegisteredCount: row.RegisteredCount,
			Available:       available,
			IsFull:          available <= 0,
		})
	}

	return result, nil
}

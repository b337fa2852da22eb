package registration

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNoActiveRegistration = errors.New("no active registration for this member and class")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, memberID, classID int) (*Registration, error) {
	query := `
		INSERT INTO registrations (member_id, class_id, status)
		VALUES ($1, $2, 'active')
		RETURNING id, member_id, class_id, status, registered_at
	`

	var reg Registration
	err := r.db.GetContext(ctx, &reg, query, memberID, classID)
	if err != nil {
		return nil, err
	}

	return &reg, nil
}

func (r *repository) HasActive(ctx context.Context, memberID, classID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM registrations
			WHERE member_id = $1 AND class_id = $2 AND status = 'active'
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, memberID, classID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) Cancel(ctx context.Context, memberID, classID int) error {
	query := `
		UPDATE registrations
		SET status = 'cancelled'
		WHERE member_id = $1 AND class_id = $2 AND status = 'active'
	`

	result, err := r.db.ExecContext(ctx, query, memberID, classID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNoActiveRegistration
	}

	return nil
}

func (r *repository) GetByClass(ctx context.Context, classID int) ([]RegistrationWithMember, error) {
	query := `
		SELECT
			r.id,
			r.member_id,
			r.class_id,
			r.status,
			r.registered_at,
			m.name AS member_name,
			m.email AS member_email
		FROM registrations r
		JOIN members m ON r.member_id = m.id
		WHERE r.class_id = $1 AND r.status = 'active'
		ORDER BY r.registered_at ASC
	`

	var regs []RegistrationWithMember
	err := r.db.SelectContext(ctx, &regs, query, classID)
	if err != nil {
		return nil, err
	}

	return regs, nil
}

func (r *repository) ActiveCounts(ctx context.Context) (map[int]int, error) {
	query := `
		SELECT class_id, COUNT(*) AS active_count
		FROM registrations
		WHERE status = 'active'
		GROUP BY class_id
	`

	rows := []struct {
		ClassID     int `db:"class_id"`
		ActiveCount int `db:"active_count"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.ClassID] = row.ActiveCount
	}

	return counts, nil
}

func (r *repository) CountActive(ctx context.Context, classID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM registrations
		WHERE class_id = $1 AND status = 'active'
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, classID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

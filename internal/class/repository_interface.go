package class

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, name string, trainerID, roomID int, start, end time.Time, capacity int) (*GroupClass, error)
	Update(ctx context.Context, id int, name string, trainerID, roomID int, start, end time.Time, capacity int) (*GroupClass, error)
	GetByID(ctx context.Context, id int) (*GroupClass, error)
	GetAll(ctx context.Context) ([]GroupClass, error)
	GetAllWithAvailability(ctx context.Context) ([]ClassWithAvailability, error)
}

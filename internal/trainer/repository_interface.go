package trainer

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, name, specialization string) (*Trainer, error)
	GetByID(ctx context.Context, id int) (*Trainer, error)
	Exists(ctx context.Context, id int) (bool, error)
	AddWindow(ctx context.Context, trainerID int, start, end time.Time) (*AvailabilityWindow, error)
	GetWindows(ctx context.Context, trainerID int) ([]AvailabilityWindow, error)
}

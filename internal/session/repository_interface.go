package session

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, trainerID, memberID int, start, end time.Time) (*PTSession, error)
	GetAll(ctx context.Context) ([]PTSession, error)
	GetByTrainer(ctx context.Context, trainerID int) ([]PTSession, error)
}

package room

import "context"

type Repository interface {
	Create(ctx context.Context, name string, capacity int, location string) (*Room, error)
	GetByID(ctx context.Context, id int) (*Room, error)
	Exists(ctx context.Context, id int) (bool, error)
}

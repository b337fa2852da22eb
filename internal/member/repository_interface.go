package member

import "context"

type Repository interface {
	Create(ctx context.Context, name, email string) (*Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	Exists(ctx context.Context, id int) (bool, error)
}

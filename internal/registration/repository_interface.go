package registration

import "context"

type Repository interface {
	Create(ctx context.Context, memberID, classID int) (*Registration, error)
	HasActive(ctx context.Context, memberID, classID int) (bool, error)
	Cancel(ctx context.Context, memberID, classID int) error
	GetByClass(ctx context.Context, classID int) ([]RegistrationWithMember, error)
	ActiveCounts(ctx context.Context) (map[int]int, error)
	CountActive(ctx context.Context, classID int) (int, error)
}

package account

import (
	"context"

	"urbanmobility/internal/domain"
)

// AccountRepository defines the persistence gateway for accounts.
// Lookups return (nil, nil) when no record matches.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetAll(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, a *domain.Account) error
	DeleteByID(ctx context.Context, id int64) error
}

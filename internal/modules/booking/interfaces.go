package booking

import (
	"context"

	"urbanmobility/internal/domain"
)

// BookingRepository defines the persistence gateway for bookings.
// GetByID returns (nil, nil) when no record matches.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	DeleteByID(ctx context.Context, id int64) error
}

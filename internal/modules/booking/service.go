package booking

import (
	"context"
	"fmt"
	"strings"

	"urbanmobility/internal/domain"
)

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

// Create validates and persists a new booking. The owner username must
// be non-blank and the route id positive; the two checks are
// independent and run in that order.
func (s *Service) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if b == nil {
		return nil, ErrInvalidInput
	}

	if strings.TrimSpace(b.Username) == "" {
		return nil, ErrMissingUsername
	}
	if b.RouteID < 1 {
		return nil, ErrInvalidRoute
	}

	b.ID = 0
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("booking create: %w", err)
	}

	return b, nil
}

// GetByID returns (nil, nil) when the id is unknown.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking lookup: %w", err)
	}
	return b, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("booking list: %w", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

// Update replaces the whole record under the path id. The id carried in
// the patch is discarded, and field contents are not re-validated; only
// create runs the username/route checks.
func (s *Service) Update(ctx context.Context, id int64, patch *domain.Booking) (*domain.Booking, error) {
	if patch == nil {
		return nil, ErrInvalidInput
	}

	exists, err := s.bookings.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking lookup: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("booking with id %d: %w", id, ErrNotFound)
	}

	patch.ID = id
	if err := s.bookings.Update(ctx, patch); err != nil {
		return nil, fmt.Errorf("booking update: %w", err)
	}

	return patch, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.bookings.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("booking lookup: %w", err)
	}
	if !exists {
		return fmt.Errorf("booking with id %d: %w", id, ErrNotFound)
	}

	if err := s.bookings.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("booking delete: %w", err)
	}
	return nil
}

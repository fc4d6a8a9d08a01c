package booking

import "urbanmobility/internal/domain"

type CreateBookingRequest struct {
	RouteID  int    `json:"routeId"`
	Username string `json:"username"`
}

// UpdateBookingRequest may carry a bookingId in the body; the path id
// always wins.
type UpdateBookingRequest struct {
	ID       int64  `json:"bookingId"`
	RouteID  int    `json:"routeId"`
	Username string `json:"username"`
}

func (r CreateBookingRequest) toDomain() *domain.Booking {
	return &domain.Booking{
		RouteID:  r.RouteID,
		Username: r.Username,
	}
}

func (r UpdateBookingRequest) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:       r.ID,
		RouteID:  r.RouteID,
		Username: r.Username,
	}
}

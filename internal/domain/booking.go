package domain

// Booking ties a route to the username that booked it. Username is not
// a foreign key into accounts; the two entities are deliberately
// independent.
type Booking struct {
	ID       int64  `json:"bookingId"`
	RouteID  int    `json:"routeId"`
	Username string `json:"username"`
}

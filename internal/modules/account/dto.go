package account

import "urbanmobility/internal/domain"

type CreateAccountRequest struct {
	Username       string `json:"username" validate:"notblank"`
	Role           string `json:"role"`
	Phone          string `json:"phone"`
	PaymentInfo    string `json:"paymentInfo"`
	PaymentHistory int    `json:"paymentHistory"`
	ActiveBookings string `json:"activeBookings"`
	IsPaymentSet   bool   `json:"isPaymentSet"`
}

// UpdateAccountRequest may carry an id in the body; the path id always
// wins.
type UpdateAccountRequest struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	Phone          string `json:"phone"`
	PaymentInfo    string `json:"paymentInfo"`
	PaymentHistory int    `json:"paymentHistory"`
	ActiveBookings string `json:"activeBookings"`
	IsPaymentSet   bool   `json:"isPaymentSet"`
}

func (r CreateAccountRequest) toDomain() *domain.Account {
	return &domain.Account{
		Username:       r.Username,
		Role:           r.Role,
		Phone:          r.Phone,
		PaymentInfo:    r.PaymentInfo,
		PaymentHistory: r.PaymentHistory,
		ActiveBookings: r.ActiveBookings,
		IsPaymentSet:   r.IsPaymentSet,
	}
}

func (r UpdateAccountRequest) toDomain() *domain.Account {
	return &domain.Account{
		ID:             r.ID,
		Username:       r.Username,
		Role:           r.Role,
		Phone:          r.Phone,
		PaymentInfo:    r.PaymentInfo,
		PaymentHistory: r.PaymentHistory,
		ActiveBookings: r.ActiveBookings,
		IsPaymentSet:   r.IsPaymentSet,
	}
}

package domain

// Account is a mobility user record. Username is unique across all
// accounts; the remaining fields are free-form and only checked at
// creation time by the account service.
type Account struct {
	ID             int64  `json:"id"`
	Username       string `json:"username" validate:"required"`
	Role           string `json:"role"`
	Phone          string `json:"phone"`
	PaymentInfo    string `json:"paymentInfo"`
	PaymentHistory int    `json:"paymentHistory"`
	ActiveBookings string `json:"activeBookings"`
	IsPaymentSet   bool   `json:"isPaymentSet"`
}

// IsEmpty reports whether every updatable field carries its zero value.
// Used by the update pipeline to reject empty patches.
func (a Account) IsEmpty() bool {
	return a.Username == "" &&
		a.Role == "" &&
		a.PaymentInfo == "" &&
		a.PaymentHistory == 0 &&
		a.Phone == "" &&
		a.ActiveBookings == ""
}

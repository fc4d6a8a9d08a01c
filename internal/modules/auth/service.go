package auth

import (
	"context"
	"fmt"
	"strings"

	"urbanmobility/internal/domain"
)

// SupplierConfirmation is the fixed value returned on a successful
// supplier check. No token or session is involved.
const SupplierConfirmation = "Authenticated successfully as a supplier!"

const supplierRole = "supplier"

// AccountGetter is the slice of the account service the supplier check
// needs.
type AccountGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
}

type Service struct {
	accounts AccountGetter
}

func NewService(accounts AccountGetter) *Service {
	return &Service{accounts: accounts}
}

// AuthenticateSupplier confirms that the account exists and holds the
// supplier role. The role comparison is case-insensitive.
func (s *Service) AuthenticateSupplier(ctx context.Context, accountID int64) (string, error) {
	a, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("supplier check: %w", err)
	}
	if a == nil {
		return "", fmt.Errorf("account with id %d: %w", accountID, ErrNotFound)
	}

	if !strings.EqualFold(a.Role, supplierRole) {
		return "", ErrForbidden
	}

	return SupplierConfirmation, nil
}

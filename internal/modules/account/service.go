package account

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"urbanmobility/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	phonePattern      = regexp.MustCompile(`^[0-9]{10}$`)
	cardCharsPattern  = regexp.MustCompile(`^[0-9 ]+$`)
	cardDigitsPattern = regexp.MustCompile(`^[0-9]{16}$`)
)

type Service struct {
	accounts AccountRepository
}

func NewService(accounts AccountRepository) *Service {
	return &Service{accounts: accounts}
}

// Create validates and persists a new account. Check order is fixed:
// username uniqueness first, then phone format, then card format; the
// first failing check decides the error.
func (s *Service) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	existing, err := s.accounts.GetByUsername(ctx, a.Username)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	if !phonePattern.MatchString(a.Phone) {
		return nil, ErrInvalidPhone
	}
	if !validCardNumber(a.PaymentInfo) {
		return nil, ErrInvalidCard
	}

	a.ID = 0
	if err := s.accounts.Create(ctx, a); err != nil {
		// The uniqueness check above races with concurrent inserts;
		// the unique index on username is the backstop.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("account create: %w", err)
	}

	return a, nil
}

// validCardNumber accepts strings made of digits and spaces that reduce
// to exactly 16 digits once the spaces are removed.
func validCardNumber(paymentInfo string) bool {
	if !cardCharsPattern.MatchString(paymentInfo) {
		return false
	}
	return cardDigitsPattern.MatchString(strings.ReplaceAll(paymentInfo, " ", ""))
}

// GetByID returns (nil, nil) when the id is unknown.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	return a, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("account list: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// Update replaces the whole record under the path id. Field formats are
// not re-validated here; only create runs the phone/card checks.
func (s *Service) Update(ctx context.Context, id int64, patch *domain.Account) (*domain.Account, error) {
	exists, err := s.accounts.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("account with id %d: %w", id, ErrNotFound)
	}

	if patch.Username == "" {
		return nil, ErrEmptyUsername
	}
	if patch.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	patch.ID = id
	if err := s.accounts.Update(ctx, patch); err != nil {
		return nil, fmt.Errorf("account update: %w", err)
	}

	return patch, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.accounts.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("account lookup: %w", err)
	}
	if !exists {
		return fmt.Errorf("account with id %d: %w", id, ErrNotFound)
	}

	if err := s.accounts.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("account delete: %w", err)
	}
	return nil
}

package account

import (
	"context"
	"errors"
	"testing"

	"urbanmobility/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, a *domain.Account) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil && a != nil {
		a.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *domain.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validAccount() *domain.Account {
	return &domain.Account{
		Username:       "Tom",
		Role:           "User",
		Phone:          "0722946563",
		PaymentInfo:    "3334 5566 3432 9090",
		PaymentHistory: 4,
		ActiveBookings: "3",
		IsPaymentSet:   true,
	}
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("GetByUsername", mock.Anything, "Tom").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Account")).Return(nil)

	created, err := svc.Create(context.Background(), validAccount())

	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Tom", created.Username)
	repo.AssertExpectations(t)
}

func TestService_Create_DuplicateUsername(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("GetByUsername", mock.Anything, "Tom").Return(&domain.Account{ID: 7, Username: "Tom"}, nil)

	// The account also carries an invalid phone; the duplicate check
	// runs first and decides the error.
	a := validAccount()
	a.Phone = "123"

	_, err := svc.Create(context.Background(), a)

	assert.ErrorIs(t, err, ErrUsernameExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_PhoneValidation(t *testing.T) {
	cases := []struct {
		name    string
		phone   string
		wantErr error
	}{
		{"ten digits accepted", "0722946563", nil},
		{"nine digits rejected", "123456789", ErrInvalidPhone},
		{"letters and symbols rejected", "-1234567890p", ErrInvalidPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockAccountRepository)
			svc := NewService(repo)
			repo.On("GetByUsername", mock.Anything, mock.Anything).Return(nil, nil)
			repo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

			a := validAccount()
			a.Phone = tc.phone

			_, err := svc.Create(context.Background(), a)

			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestService_Create_CardValidation(t *testing.T) {
	cases := []struct {
		name    string
		card    string
		wantErr error
	}{
		{"sixteen digits with spaces accepted", "3334 5566 3432 9090", nil},
		{"sixteen digits without spaces accepted", "3334556634329090", nil},
		{"fifteen digits rejected", "3477 8567 3477 7", ErrInvalidCard},
		{"dashes rejected", "3334-5566-3432-9090", ErrInvalidCard},
		{"letters rejected", "3334 5566 3432 90a0", ErrInvalidCard},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockAccountRepository)
			svc := NewService(repo)
			repo.On("GetByUsername", mock.Anything, mock.Anything).Return(nil, nil)
			repo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

			a := validAccount()
			a.PaymentInfo = tc.card

			_, err := svc.Create(context.Background(), a)

			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestService_Create_UniqueIndexConflict(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("GetByUsername", mock.Anything, "Tom").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_accounts_username",
	})

	_, err := svc.Create(context.Background(), validAccount())

	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestService_GetByID_Absent(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(42)).Return(nil, nil)

	a, err := svc.GetByID(context.Background(), 42)

	assert.NoError(t, err)
	assert.Nil(t, a)
}

func TestService_GetAll_EmptyIsNotNil(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("GetAll", mock.Anything).Return(nil, nil)

	accounts, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("ExistsByID", mock.Anything, int64(2)).Return(false, nil)

	_, err := svc.Update(context.Background(), 2, &domain.Account{Username: "UpdatedUser"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "id 2")
}

func TestService_Update_EmptyPatchRejected(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)

	// All fields at their zero value; the username check fires first.
	_, err := svc.Update(context.Background(), 1, &domain.Account{})

	assert.ErrorIs(t, err, ErrEmptyUsername)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_UsernameOnlyPatchAccepted(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Account")).Return(nil)

	// The patch carries a stale id; the path id must win.
	patch := &domain.Account{ID: 999, Username: "UpdatedUser"}

	updated, err := svc.Update(context.Background(), 1, patch)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "UpdatedUser", updated.Username)
	repo.AssertExpectations(t)
}

func TestService_Update_NoFormatRevalidation(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	// Phone and card would fail the create checks; update accepts them.
	patch := &domain.Account{Username: "UpdatedUser", Phone: "12", PaymentInfo: "nope"}

	_, err := svc.Update(context.Background(), 1, patch)

	assert.NoError(t, err)
}

func TestService_Delete_Success(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
	repo.On("DeleteByID", mock.Anything, int64(1)).Return(nil)

	err := svc.Delete(context.Background(), 1)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("ExistsByID", mock.Anything, int64(55)).Return(false, nil)

	err := svc.Delete(context.Background(), 55)

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestService_Create_StorageFailureWrapped(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	boom := errors.New("connection reset")
	repo.On("GetByUsername", mock.Anything, mock.Anything).Return(nil, boom)

	_, err := svc.Create(context.Background(), validAccount())

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUsernameExists)
}

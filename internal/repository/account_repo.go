package repository

import (
	"context"
	"errors"

	"urbanmobility/internal/domain"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountModel struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	Username       string `gorm:"column:username;uniqueIndex:idx_accounts_username"`
	Role           string `gorm:"column:role"`
	Phone          string `gorm:"column:phone"`
	PaymentInfo    string `gorm:"column:payment_info"`
	PaymentHistory int    `gorm:"column:payment_history"`
	ActiveBookings string `gorm:"column:active_bookings"`
	IsPaymentSet   bool   `gorm:"column:is_payment_set"`
}

func (accountModel) TableName() string { return "accounts" }

func toDomainAccount(m accountModel) *domain.Account {
	return &domain.Account{
		ID:             m.ID,
		Username:       m.Username,
		Role:           m.Role,
		Phone:          m.Phone,
		PaymentInfo:    m.PaymentInfo,
		PaymentHistory: m.PaymentHistory,
		ActiveBookings: m.ActiveBookings,
		IsPaymentSet:   m.IsPaymentSet,
	}
}

func toAccountModel(a *domain.Account) accountModel {
	return accountModel{
		ID:             a.ID,
		Username:       a.Username,
		Role:           a.Role,
		Phone:          a.Phone,
		PaymentInfo:    a.PaymentInfo,
		PaymentHistory: a.PaymentHistory,
		ActiveBookings: a.ActiveBookings,
		IsPaymentSet:   a.IsPaymentSet,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	m := toAccountModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAccount(m)
	return nil
}

// GetByID returns (nil, nil) when no account carries the id.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	var m accountModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}

// GetByUsername does a case-sensitive exact match and returns (nil, nil)
// when the username is unclaimed.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var m accountModel
	tx := r.db.WithContext(ctx).Where("username = ?", username).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}

func (r *AccountRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&accountModel{}).Where("id = ?", id).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	var models []accountModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Account, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainAccount(m))
	}
	return out, nil
}

// Update overwrites the full record under its id.
func (r *AccountRepository) Update(ctx context.Context, a *domain.Account) error {
	m := toAccountModel(a)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAccount(m)
	return nil
}

func (r *AccountRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&accountModel{}, id).Error
}

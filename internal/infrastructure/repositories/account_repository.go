package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ventixe/accountsvc/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags).
// NormalizedEmail carries the unique index so email uniqueness is
// case-insensitive and enforced by the database itself.
type DBAccount struct {
	ID              string    `gorm:"primaryKey;size:36"`
	Email           string    `gorm:"size:255"`
	NormalizedEmail string    `gorm:"uniqueIndex;size:255"`
	Username        string    `gorm:"size:255"`
	PasswordHash    string    `gorm:"column:password"`
	PhoneNumber     string    `gorm:"size:32"`
	EmailConfirmed  bool      `gorm:"index"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository. The repository assigns the
// account id; ids are opaque and never reused.
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	if dbAccount.ID == "" {
		dbAccount.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	account.ID = dbAccount.ID
	account.CreatedAt = dbAccount.CreatedAt
	account.UpdatedAt = dbAccount.UpdatedAt
	return nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByEmail implements domain.AccountRepository; lookup is
// case-insensitive via the normalized column.
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("normalized_email = ?", strings.ToLower(email)).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// Update implements domain.AccountRepository
func (r *AccountRepositoryImpl) Update(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	result := r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", dbAccount.ID).Updates(map[string]any{
		"email":            dbAccount.Email,
		"normalized_email": dbAccount.NormalizedEmail,
		"username":         dbAccount.Username,
		"password":         dbAccount.PasswordHash,
		"phone_number":     dbAccount.PhoneNumber,
		"email_confirmed":  dbAccount.EmailConfirmed,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEmail
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Delete implements domain.AccountRepository. Deletion is terminal; there
// is no soft delete.
func (r *AccountRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBAccount{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// ListAll implements domain.AccountRepository
func (r *AccountRepositoryImpl) ListAll(ctx context.Context) ([]*domain.Account, error) {
	var dbAccounts []DBAccount
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dbAccounts).Error; err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(dbAccounts))
	for i := range dbAccounts {
		accounts = append(accounts, r.dbToDomain(&dbAccounts[i]))
	}
	return accounts, nil
}

// domainToDB converts domain account to database account
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:              account.ID,
		Email:           account.Email,
		NormalizedEmail: strings.ToLower(account.Email),
		Username:        account.Username,
		PasswordHash:    account.PasswordHash,
		PhoneNumber:     account.PhoneNumber,
		EmailConfirmed:  account.EmailConfirmed,
	}
}

// dbToDomain converts database account to domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:             dbAccount.ID,
		Email:          dbAccount.Email,
		Username:       dbAccount.Username,
		PasswordHash:   dbAccount.PasswordHash,
		PhoneNumber:    dbAccount.PhoneNumber,
		EmailConfirmed: dbAccount.EmailConfirmed,
		CreatedAt:      dbAccount.CreatedAt,
		UpdatedAt:      dbAccount.UpdatedAt,
	}
}

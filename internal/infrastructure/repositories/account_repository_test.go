package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ventixe/accountsvc/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBAccount{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func testAccount(email string) *domain.Account {
	return &domain.Account{
		Email:        email,
		Username:     email,
		PasswordHash: "hashed_password",
	}
}

func TestAccountRepositoryImpl_Create(t *testing.T) {
	repo := NewAccountRepository(setupTestDB(t))
	ctx := context.Background()

	account := testAccount("test@example.com")
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if account.ID == "" {
		t.Error("expected the store to assign an id")
	}

	found, err := repo.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Email != "test@example.com" || found.EmailConfirmed {
		t.Errorf("unexpected account: %+v", found)
	}
}

func TestAccountRepositoryImpl_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, testAccount("test@example.com")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Same address with different casing must hit the unique index.
	err := repo.Create(ctx, testAccount("TEST@Example.COM"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	var count int64
	db.Model(&DBAccount{}).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly 1 stored account, got %d", count)
	}
}

func TestAccountRepositoryImpl_FindByEmail_CaseInsensitive(t *testing.T) {
	repo := NewAccountRepository(setupTestDB(t))
	ctx := context.Background()

	account := testAccount("Mixed.Case@Example.com")
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByEmail(ctx, "mixed.case@example.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.ID != account.ID {
		t.Errorf("expected id %q, got %q", account.ID, found.ID)
	}
	if found.Email != "Mixed.Case@Example.com" {
		t.Errorf("expected original casing preserved, got %q", found.Email)
	}

	if _, err := repo.FindByEmail(ctx, "missing@example.com"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepositoryImpl_Update(t *testing.T) {
	repo := NewAccountRepository(setupTestDB(t))
	ctx := context.Background()

	account := testAccount("test@example.com")
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	account.PhoneNumber = "+46701234567"
	account.EmailConfirmed = true
	if err := repo.Update(ctx, account); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	found, err := repo.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.PhoneNumber != "+46701234567" || !found.EmailConfirmed {
		t.Errorf("unexpected account after update: %+v", found)
	}
}

func TestAccountRepositoryImpl_Update_DuplicateEmail(t *testing.T) {
	repo := NewAccountRepository(setupTestDB(t))
	ctx := context.Background()

	first := testAccount("first@example.com")
	second := testAccount("second@example.com")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	second.Email = "First@Example.com"
	err := repo.Update(ctx, second)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAccountRepositoryImpl_Update_MissingAccount(t *testing.T) {
	repo := NewAccountRepository(setupTestDB(t))

	missing := testAccount("ghost@example.com")
	missing.ID = "no-such-id"
	err := repo.Update(context.Background(), missing)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepositoryImpl_Delete(t *testing.T) {
	repo := NewAccountRepository(setupTestDB(t))
	ctx := context.Background()

	account := testAccount("test@example.com")
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.Delete(ctx, account.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, account.ID); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound after delete, got %v", err)
	}

	if err := repo.Delete(ctx, account.ID); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound on second delete, got %v", err)
	}
}

func TestAccountRepositoryImpl_ListAll(t *testing.T) {
	repo := NewAccountRepository(setupTestDB(t))
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty list, got %d", len(all))
	}

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if err := repo.Create(ctx, testAccount(email)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	all, err = repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(all))
	}
}

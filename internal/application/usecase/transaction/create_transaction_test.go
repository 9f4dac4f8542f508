package transaction

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
	"github.com/pocketfin/backend/internal/integration/persistence"
	"github.com/pocketfin/backend/internal/integration/persistence/model"
)

// testFixture wires the transaction use cases against an in-memory database.
type testFixture struct {
	createUC *CreateTransactionUseCase
	updateUC *UpdateTransactionUseCase
	deleteUC *DeleteTransactionUseCase
	listUC   *ListTransactionsUseCase

	transactionRepo adapter.TransactionRepository
	pocketRepo      adapter.PocketRepository
	categoryRepo    adapter.CategoryRepository

	userID   uuid.UUID
	category *entity.Category
	pocket   *entity.Pocket
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.PocketModel{},
		&model.TransactionModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	db := newTestDB(t)
	txManager := persistence.NewTxManager(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	pocketRepo := persistence.NewPocketRepository(db)

	ctx := context.Background()
	userID := uuid.New()

	category := entity.NewCategory(userID, "Groceries", "cart", "#22C55E", entity.CategoryTypeExpense)
	if err := categoryRepo.Create(ctx, category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	pocket := entity.NewPocket(userID, "Main", "wallet", true)
	if err := pocketRepo.Create(ctx, pocket); err != nil {
		t.Fatalf("failed to create pocket: %v", err)
	}

	return &testFixture{
		createUC:        NewCreateTransactionUseCase(transactionRepo, categoryRepo, pocketRepo, txManager),
		updateUC:        NewUpdateTransactionUseCase(transactionRepo, categoryRepo, pocketRepo, txManager),
		deleteUC:        NewDeleteTransactionUseCase(transactionRepo, pocketRepo, txManager),
		listUC:          NewListTransactionsUseCase(transactionRepo),
		transactionRepo: transactionRepo,
		pocketRepo:      pocketRepo,
		categoryRepo:    categoryRepo,
		userID:          userID,
		category:        category,
		pocket:          pocket,
	}
}

func (f *testFixture) pocketBalance(t *testing.T, id uuid.UUID) decimal.Decimal {
	t.Helper()
	pocket, err := f.pocketRepo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to reload pocket: %v", err)
	}
	return pocket.Balance
}

func TestCreateTransactionAdjustsPocketBalance(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	_, err := f.createUC.Execute(ctx, CreateTransactionInput{
		UserID:      f.userID,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Weekly shop",
		Amount:      decimal.NewFromInt(50),
		Type:        entity.TransactionTypeExpense,
		CategoryID:  f.category.ID,
	})
	if err != nil {
		t.Fatalf("expense creation failed: %v", err)
	}

	if got := f.pocketBalance(t, f.pocket.ID); !got.Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("balance after expense = %s, want -50", got)
	}

	_, err = f.createUC.Execute(ctx, CreateTransactionInput{
		UserID:      f.userID,
		Date:        time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Description: "Refund",
		Amount:      decimal.NewFromInt(20),
		Type:        entity.TransactionTypeIncome,
		CategoryID:  f.category.ID,
	})
	if err != nil {
		t.Fatalf("income creation failed: %v", err)
	}

	if got := f.pocketBalance(t, f.pocket.ID); !got.Equal(decimal.NewFromInt(-30)) {
		t.Fatalf("balance after income = %s, want -30", got)
	}
}

func TestCreateTransactionFallsBackToDefaultPocket(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	output, err := f.createUC.Execute(ctx, CreateTransactionInput{
		UserID:      f.userID,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "No pocket given",
		Amount:      decimal.NewFromInt(10),
		Type:        entity.TransactionTypeExpense,
		CategoryID:  f.category.ID,
	})
	if err != nil {
		t.Fatalf("creation failed: %v", err)
	}

	if output.Transaction.Pocket == nil || output.Transaction.Pocket.ID != f.pocket.ID {
		t.Fatalf("transaction was not assigned to the default pocket")
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	base := CreateTransactionInput{
		UserID:      f.userID,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Test",
		Amount:      decimal.NewFromInt(10),
		Type:        entity.TransactionTypeExpense,
		CategoryID:  f.category.ID,
	}

	t.Run("invalid type", func(t *testing.T) {
		input := base
		input.Type = "transfer"
		_, err := f.createUC.Execute(ctx, input)
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionType)
	})

	t.Run("zero amount", func(t *testing.T) {
		input := base
		input.Amount = decimal.Zero
		_, err := f.createUC.Execute(ctx, input)
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionAmount)
	})

	t.Run("negative amount", func(t *testing.T) {
		input := base
		input.Amount = decimal.NewFromInt(-5)
		_, err := f.createUC.Execute(ctx, input)
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionAmount)
	})

	t.Run("description too long", func(t *testing.T) {
		input := base
		input.Description = strings.Repeat("x", MaxDescriptionLength+1)
		_, err := f.createUC.Execute(ctx, input)
		assertTransactionErrorCode(t, err, domainerror.ErrCodeDescriptionTooLong)
	})

	t.Run("unknown category", func(t *testing.T) {
		input := base
		input.CategoryID = uuid.New()
		_, err := f.createUC.Execute(ctx, input)
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTxnCategoryNotFound)
	})

	t.Run("foreign category", func(t *testing.T) {
		otherCategory := entity.NewCategory(uuid.New(), "Other", "tag", "#000000", entity.CategoryTypeExpense)
		if err := f.categoryRepo.Create(ctx, otherCategory); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
		input := base
		input.CategoryID = otherCategory.ID
		_, err := f.createUC.Execute(ctx, input)
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTxnCategoryNotFound)
	})
}

func assertTransactionErrorCode(t *testing.T, err error, want domainerror.TransactionErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	txnErr, ok := err.(*domainerror.TransactionError)
	if !ok {
		t.Fatalf("expected *TransactionError, got %T: %v", err, err)
	}
	if txnErr.Code != want {
		t.Fatalf("error code = %s, want %s", txnErr.Code, want)
	}
}

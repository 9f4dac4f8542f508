package pocket

import (
	"context"
	"fmt"
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

// testFixture wires the pocket use cases against an in-memory database.
type testFixture struct {
	listUC     *ListPocketsUseCase
	createUC   *CreatePocketUseCase
	updateUC   *UpdatePocketUseCase
	deleteUC   *DeletePocketUseCase
	transferUC *TransferUseCase

	pocketRepo      adapter.PocketRepository
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository

	userID uuid.UUID
}

func newTestFixture(t *testing.T) *testFixture {
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
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.CategoryModel{},
		&model.PocketModel{},
		&model.TransactionModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	txManager := persistence.NewTxManager(db)
	pocketRepo := persistence.NewPocketRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)

	return &testFixture{
		listUC:          NewListPocketsUseCase(pocketRepo),
		createUC:        NewCreatePocketUseCase(pocketRepo, txManager),
		updateUC:        NewUpdatePocketUseCase(pocketRepo, txManager),
		deleteUC:        NewDeletePocketUseCase(pocketRepo, transactionRepo, txManager),
		transferUC:      NewTransferUseCase(pocketRepo, txManager),
		pocketRepo:      pocketRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		userID:          uuid.New(),
	}
}

// newPocket creates and funds a pocket directly through the repository.
func (f *testFixture) newPocket(t *testing.T, name string, isDefault bool, balance decimal.Decimal) *entity.Pocket {
	t.Helper()
	ctx := context.Background()

	pocket := entity.NewPocket(f.userID, name, "wallet", isDefault)
	if err := f.pocketRepo.Create(ctx, pocket); err != nil {
		t.Fatalf("failed to create pocket: %v", err)
	}
	if !balance.IsZero() {
		if err := f.pocketRepo.AdjustBalance(ctx, pocket.ID, balance); err != nil {
			t.Fatalf("failed to fund pocket: %v", err)
		}
	}
	return pocket
}

func (f *testFixture) pocketBalance(t *testing.T, id uuid.UUID) decimal.Decimal {
	t.Helper()
	pocket, err := f.pocketRepo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to reload pocket: %v", err)
	}
	return pocket.Balance
}

func assertPocketErrorCode(t *testing.T, err error, want domainerror.PocketErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	pktErr, ok := err.(*domainerror.PocketError)
	if !ok {
		t.Fatalf("expected *PocketError, got %T: %v", err, err)
	}
	if pktErr.Code != want {
		t.Fatalf("error code = %s, want %s", pktErr.Code, want)
	}
}

func TestTransferConservesTotalFunds(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	main := f.newPocket(t, "Main", true, decimal.NewFromInt(100))
	savings := f.newPocket(t, "Savings", false, decimal.NewFromInt(10))

	output, err := f.transferUC.Execute(ctx, TransferInput{
		UserID:       f.userID,
		FromPocketID: main.ID,
		ToPocketID:   savings.ID,
		Amount:       decimal.NewFromInt(40),
	})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	if !output.FromPocket.Balance.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("source balance = %s, want 60", output.FromPocket.Balance)
	}
	if !output.ToPocket.Balance.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("destination balance = %s, want 50", output.ToPocket.Balance)
	}

	total := f.pocketBalance(t, main.ID).Add(f.pocketBalance(t, savings.ID))
	if !total.Equal(decimal.NewFromInt(110)) {
		t.Fatalf("total funds = %s, want 110", total)
	}
}

func TestTransferInsufficientFunds(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	main := f.newPocket(t, "Main", true, decimal.NewFromInt(30))
	savings := f.newPocket(t, "Savings", false, decimal.Zero)

	_, err := f.transferUC.Execute(ctx, TransferInput{
		UserID:       f.userID,
		FromPocketID: main.ID,
		ToPocketID:   savings.ID,
		Amount:       decimal.NewFromInt(50),
	})
	assertPocketErrorCode(t, err, domainerror.ErrCodeInsufficientFunds)

	// A failed transfer must leave both balances untouched.
	if got := f.pocketBalance(t, main.ID); !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("source balance = %s, want 30", got)
	}
	if got := f.pocketBalance(t, savings.ID); !got.IsZero() {
		t.Fatalf("destination balance = %s, want 0", got)
	}
}

func TestTransferValidation(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	main := f.newPocket(t, "Main", true, decimal.NewFromInt(100))
	savings := f.newPocket(t, "Savings", false, decimal.Zero)

	t.Run("same pocket", func(t *testing.T) {
		_, err := f.transferUC.Execute(ctx, TransferInput{
			UserID:       f.userID,
			FromPocketID: main.ID,
			ToPocketID:   main.ID,
			Amount:       decimal.NewFromInt(10),
		})
		assertPocketErrorCode(t, err, domainerror.ErrCodeInvalidTransfer)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := f.transferUC.Execute(ctx, TransferInput{
			UserID:       f.userID,
			FromPocketID: main.ID,
			ToPocketID:   savings.ID,
			Amount:       decimal.Zero,
		})
		assertPocketErrorCode(t, err, domainerror.ErrCodeInvalidTransfer)
	})

	t.Run("foreign pocket", func(t *testing.T) {
		foreign := entity.NewPocket(uuid.New(), "Other", "wallet", true)
		if err := f.pocketRepo.Create(ctx, foreign); err != nil {
			t.Fatalf("failed to create pocket: %v", err)
		}
		_, err := f.transferUC.Execute(ctx, TransferInput{
			UserID:       f.userID,
			FromPocketID: main.ID,
			ToPocketID:   foreign.ID,
			Amount:       decimal.NewFromInt(10),
		})
		assertPocketErrorCode(t, err, domainerror.ErrCodePocketNotFound)
	})
}

// seedTransaction inserts a ledger row and applies its balance effect, the
// same pairing the transaction use cases maintain.
func (f *testFixture) seedTransaction(t *testing.T, pocketID, categoryID uuid.UUID, amount decimal.Decimal, txnType entity.TransactionType) *entity.Transaction {
	t.Helper()
	ctx := context.Background()

	txn := entity.NewTransaction(
		f.userID,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		"seed",
		amount,
		txnType,
		categoryID,
		pocketID,
		nil,
	)
	if err := f.transactionRepo.Create(ctx, txn); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
	if err := f.pocketRepo.AdjustBalance(ctx, pocketID, txn.SignedAmount()); err != nil {
		t.Fatalf("failed to adjust balance: %v", err)
	}
	return txn
}

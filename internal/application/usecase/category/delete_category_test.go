package category

import (
	"context"
	"errors"
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

// testFixture wires the category use cases against an in-memory database.
type testFixture struct {
	listUC   *ListCategoriesUseCase
	createUC *CreateCategoryUseCase
	updateUC *UpdateCategoryUseCase
	deleteUC *DeleteCategoryUseCase

	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	recurringRepo   adapter.RecurringRepository
	pocketRepo      adapter.PocketRepository

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
		&model.BudgetModel{},
		&model.RecurringTransactionModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	txManager := persistence.NewTxManager(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	recurringRepo := persistence.NewRecurringRepository(db)
	pocketRepo := persistence.NewPocketRepository(db)

	return &testFixture{
		listUC:          NewListCategoriesUseCase(categoryRepo),
		createUC:        NewCreateCategoryUseCase(categoryRepo),
		updateUC:        NewUpdateCategoryUseCase(categoryRepo),
		deleteUC:        NewDeleteCategoryUseCase(categoryRepo, transactionRepo, budgetRepo, recurringRepo, pocketRepo, txManager),
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		recurringRepo:   recurringRepo,
		pocketRepo:      pocketRepo,
		userID:          uuid.New(),
	}
}

func (f *testFixture) newCategory(t *testing.T) *entity.Category {
	t.Helper()
	category := entity.NewCategory(f.userID, "Groceries", "cart", "#22C55E", entity.CategoryTypeExpense)
	if err := f.categoryRepo.Create(context.Background(), category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

func (f *testFixture) newPocket(t *testing.T) *entity.Pocket {
	t.Helper()
	pocket := entity.NewPocket(f.userID, "Main", "wallet", true)
	if err := f.pocketRepo.Create(context.Background(), pocket); err != nil {
		t.Fatalf("failed to create pocket: %v", err)
	}
	return pocket
}

// seedTransaction inserts a ledger row and applies its balance effect.
func (f *testFixture) seedTransaction(t *testing.T, categoryID, pocketID uuid.UUID, amount decimal.Decimal, txnType entity.TransactionType) {
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
}

func TestDeleteCategoryBlockedWhenInUse(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	category := f.newCategory(t)
	pocket := f.newPocket(t)

	f.seedTransaction(t, category.ID, pocket.ID, decimal.NewFromInt(10), entity.TransactionTypeExpense)
	f.seedTransaction(t, category.ID, pocket.ID, decimal.NewFromInt(20), entity.TransactionTypeExpense)

	_, err := f.deleteUC.Execute(ctx, DeleteCategoryInput{
		CategoryID: category.ID,
		UserID:     f.userID,
	})

	var inUseErr *domainerror.CategoryInUseError
	if !errors.As(err, &inUseErr) {
		t.Fatalf("expected *CategoryInUseError, got %T: %v", err, err)
	}
	if inUseErr.Table != "transactions" {
		t.Fatalf("blocking table = %q, want transactions", inUseErr.Table)
	}
	if inUseErr.UsageCount != 2 {
		t.Fatalf("usage count = %d, want 2", inUseErr.UsageCount)
	}
	if !errors.Is(err, domainerror.ErrCategoryInUse) {
		t.Fatal("error does not unwrap to ErrCategoryInUse")
	}

	// The category must survive a blocked deletion.
	if _, err := f.categoryRepo.FindByID(ctx, category.ID); err != nil {
		t.Fatalf("category was deleted despite being in use: %v", err)
	}
}

func TestDeleteCategoryBlockedByBudget(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	category := f.newCategory(t)
	budget := entity.NewBudget(f.userID, category.ID, decimal.NewFromInt(200), entity.BudgetPeriodMonthly, time.Now().UTC(), true)
	if err := f.budgetRepo.Create(ctx, budget); err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}

	_, err := f.deleteUC.Execute(ctx, DeleteCategoryInput{
		CategoryID: category.ID,
		UserID:     f.userID,
	})

	var inUseErr *domainerror.CategoryInUseError
	if !errors.As(err, &inUseErr) {
		t.Fatalf("expected *CategoryInUseError, got %T: %v", err, err)
	}
	if inUseErr.Table != "budgets" {
		t.Fatalf("blocking table = %q, want budgets", inUseErr.Table)
	}
}

func TestForceDeleteCategoryCascadesAndRestoresBalances(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	category := f.newCategory(t)
	pocket := f.newPocket(t)

	f.seedTransaction(t, category.ID, pocket.ID, decimal.NewFromInt(100), entity.TransactionTypeIncome)
	f.seedTransaction(t, category.ID, pocket.ID, decimal.NewFromInt(30), entity.TransactionTypeExpense)

	budget := entity.NewBudget(f.userID, category.ID, decimal.NewFromInt(200), entity.BudgetPeriodMonthly, time.Now().UTC(), true)
	if err := f.budgetRepo.Create(ctx, budget); err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}

	recurringTemplate := entity.NewRecurringTransaction(
		f.userID,
		decimal.NewFromInt(15),
		"Subscription",
		category.ID,
		entity.TransactionTypeExpense,
		entity.RecurringFrequencyMonthly,
		time.Now().UTC().AddDate(0, 0, 7),
		true,
	)
	if err := f.recurringRepo.Create(ctx, recurringTemplate); err != nil {
		t.Fatalf("failed to create recurring transaction: %v", err)
	}

	output, err := f.deleteUC.Execute(ctx, DeleteCategoryInput{
		CategoryID: category.ID,
		UserID:     f.userID,
		Force:      true,
	})
	if err != nil {
		t.Fatalf("force deletion failed: %v", err)
	}

	if output.DeletedTransactions != 2 {
		t.Fatalf("deleted transactions = %d, want 2", output.DeletedTransactions)
	}
	if output.DeletedBudgets != 1 {
		t.Fatalf("deleted budgets = %d, want 1", output.DeletedBudgets)
	}
	if output.DeletedRecurring != 1 {
		t.Fatalf("deleted recurring = %d, want 1", output.DeletedRecurring)
	}

	// Net contribution was +70, so the reversal brings the pocket back to zero.
	reloaded, err := f.pocketRepo.FindByID(ctx, pocket.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reloaded.Balance.IsZero() {
		t.Fatalf("pocket balance after cascade = %s, want 0", reloaded.Balance)
	}

	if _, err := f.categoryRepo.FindByID(ctx, category.ID); err == nil {
		t.Fatal("category still exists after force delete")
	}
}

func TestDeleteCategoryUnused(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	category := f.newCategory(t)

	if _, err := f.deleteUC.Execute(ctx, DeleteCategoryInput{
		CategoryID: category.ID,
		UserID:     f.userID,
	}); err != nil {
		t.Fatalf("deletion failed: %v", err)
	}

	if _, err := f.categoryRepo.FindByID(ctx, category.ID); err == nil {
		t.Fatal("category still exists")
	}
}

func TestDeleteCategoryAuthorization(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	category := f.newCategory(t)

	_, err := f.deleteUC.Execute(ctx, DeleteCategoryInput{
		CategoryID: category.ID,
		UserID:     uuid.New(),
	})
	catErr, ok := err.(*domainerror.CategoryError)
	if !ok {
		t.Fatalf("expected *CategoryError, got %T: %v", err, err)
	}
	if catErr.Code != domainerror.ErrCodeNotAuthorizedCategory {
		t.Fatalf("error code = %s, want %s", catErr.Code, domainerror.ErrCodeNotAuthorizedCategory)
	}
}

package recurring

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

// testFixture wires the recurring use cases against an in-memory database.
type testFixture struct {
	createUC   *CreateRecurringUseCase
	listUC     *ListRecurringUseCase
	toggleUC   *ToggleRecurringUseCase
	upcomingUC *GetUpcomingUseCase

	recurringRepo adapter.RecurringRepository
	categoryRepo  adapter.CategoryRepository

	userID   uuid.UUID
	category *entity.Category
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
		&model.RecurringTransactionModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	recurringRepo := persistence.NewRecurringRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)

	userID := uuid.New()
	category := entity.NewCategory(userID, "Subscriptions", "repeat", "#6366F1", entity.CategoryTypeExpense)
	if err := categoryRepo.Create(context.Background(), category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	return &testFixture{
		createUC:      NewCreateRecurringUseCase(recurringRepo, categoryRepo),
		listUC:        NewListRecurringUseCase(recurringRepo),
		toggleUC:      NewToggleRecurringUseCase(recurringRepo),
		upcomingUC:    NewGetUpcomingUseCase(recurringRepo),
		recurringRepo: recurringRepo,
		categoryRepo:  categoryRepo,
		userID:        userID,
		category:      category,
	}
}

func (f *testFixture) create(t *testing.T, description string, nextDate time.Time) *entity.RecurringTransaction {
	t.Helper()
	output, err := f.createUC.Execute(context.Background(), CreateRecurringInput{
		UserID:      f.userID,
		Amount:      decimal.NewFromInt(15),
		Description: description,
		CategoryID:  f.category.ID,
		Type:        entity.TransactionTypeExpense,
		Frequency:   entity.RecurringFrequencyMonthly,
		NextDate:    nextDate,
	})
	if err != nil {
		t.Fatalf("creation failed: %v", err)
	}
	return output.Recurring
}

func assertRecurringErrorCode(t *testing.T, err error, want domainerror.RecurringErrorCode) {
	t.Helper()
	var recErr *domainerror.RecurringError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected *RecurringError, got %T: %v", err, err)
	}
	if recErr.Code != want {
		t.Fatalf("error code = %s, want %s", recErr.Code, want)
	}
}

func TestCreateRecurringValidation(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	base := CreateRecurringInput{
		UserID:      f.userID,
		Amount:      decimal.NewFromInt(15),
		Description: "Streaming",
		CategoryID:  f.category.ID,
		Type:        entity.TransactionTypeExpense,
		Frequency:   entity.RecurringFrequencyMonthly,
		NextDate:    time.Now().UTC().AddDate(0, 0, 3),
	}

	blank := base
	blank.Description = "   "
	_, err := f.createUC.Execute(ctx, blank)
	assertRecurringErrorCode(t, err, domainerror.ErrCodeMissingRecurringFields)

	negative := base
	negative.Amount = decimal.NewFromInt(-5)
	_, err = f.createUC.Execute(ctx, negative)
	assertRecurringErrorCode(t, err, domainerror.ErrCodeMissingRecurringFields)

	badFrequency := base
	badFrequency.Frequency = "fortnightly"
	_, err = f.createUC.Execute(ctx, badFrequency)
	assertRecurringErrorCode(t, err, domainerror.ErrCodeInvalidRecurringFrequency)

	foreignCategory := base
	foreignCategory.CategoryID = uuid.New()
	_, err = f.createUC.Execute(ctx, foreignCategory)
	assertRecurringErrorCode(t, err, domainerror.ErrCodeMissingRecurringFields)
}

func TestToggleRecurringFlipsActiveFlag(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	recurring := f.create(t, "Streaming", time.Now().UTC().AddDate(0, 0, 3))
	if !recurring.IsActive {
		t.Fatal("new recurring transaction is not active")
	}

	toggled, err := f.toggleUC.Execute(ctx, ToggleRecurringInput{
		RecurringID: recurring.ID,
		UserID:      f.userID,
	})
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if toggled.Recurring.IsActive {
		t.Fatal("toggle did not deactivate")
	}

	toggled, err = f.toggleUC.Execute(ctx, ToggleRecurringInput{
		RecurringID: recurring.ID,
		UserID:      f.userID,
	})
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !toggled.Recurring.IsActive {
		t.Fatal("toggle did not reactivate")
	}
}

func TestToggleRecurringAuthorization(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	recurring := f.create(t, "Streaming", time.Now().UTC().AddDate(0, 0, 3))

	_, err := f.toggleUC.Execute(ctx, ToggleRecurringInput{
		RecurringID: recurring.ID,
		UserID:      uuid.New(),
	})
	assertRecurringErrorCode(t, err, domainerror.ErrCodeNotAuthorizedRecurring)

	_, err = f.toggleUC.Execute(ctx, ToggleRecurringInput{
		RecurringID: uuid.New(),
		UserID:      f.userID,
	})
	assertRecurringErrorCode(t, err, domainerror.ErrCodeRecurringNotFound)
}

func TestGetUpcomingRespectsWindowAndActiveFlag(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	soon := f.create(t, "Streaming", time.Now().UTC().AddDate(0, 0, 3))
	f.create(t, "Insurance", time.Now().UTC().AddDate(0, 2, 0))
	paused := f.create(t, "Gym", time.Now().UTC().AddDate(0, 0, 2))

	if _, err := f.toggleUC.Execute(ctx, ToggleRecurringInput{
		RecurringID: paused.ID,
		UserID:      f.userID,
	}); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	output, err := f.upcomingUC.Execute(ctx, GetUpcomingInput{
		UserID: f.userID,
		Days:   7,
	})
	if err != nil {
		t.Fatalf("upcoming failed: %v", err)
	}
	if len(output.Recurring) != 1 {
		t.Fatalf("upcoming = %d, want 1", len(output.Recurring))
	}
	if output.Recurring[0].ID != soon.ID {
		t.Fatalf("upcoming entry = %q, want %q", output.Recurring[0].Description, soon.Description)
	}
}

func TestListRecurringFiltersByActive(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	f.create(t, "Streaming", time.Now().UTC().AddDate(0, 0, 3))
	paused := f.create(t, "Gym", time.Now().UTC().AddDate(0, 0, 2))
	if _, err := f.toggleUC.Execute(ctx, ToggleRecurringInput{
		RecurringID: paused.ID,
		UserID:      f.userID,
	}); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	active := true
	output, err := f.listUC.Execute(ctx, ListRecurringInput{
		UserID:   f.userID,
		IsActive: &active,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(output.Recurring) != 1 {
		t.Fatalf("active recurring = %d, want 1", len(output.Recurring))
	}
	if output.Recurring[0].Description != "Streaming" {
		t.Fatalf("active entry = %q, want Streaming", output.Recurring[0].Description)
	}
}

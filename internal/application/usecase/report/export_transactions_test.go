package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
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
	"github.com/pocketfin/backend/internal/integration/persistence"
	"github.com/pocketfin/backend/internal/integration/persistence/model"
)

// testFixture wires the report use cases against an in-memory database.
type testFixture struct {
	summaryUC   *GetSummaryUseCase
	trendsUC    *GetTrendsUseCase
	breakdownUC *GetCategoryBreakdownUseCase
	exportUC    *ExportTransactionsUseCase

	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	pocketRepo      adapter.PocketRepository

	userID   uuid.UUID
	category *entity.Category
	pocket   *entity.Pocket
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
		summaryUC:       NewGetSummaryUseCase(transactionRepo),
		trendsUC:        NewGetTrendsUseCase(transactionRepo),
		breakdownUC:     NewGetCategoryBreakdownUseCase(transactionRepo),
		exportUC:        NewExportTransactionsUseCase(transactionRepo),
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		pocketRepo:      pocketRepo,
		userID:          userID,
		category:        category,
		pocket:          pocket,
	}
}

func (f *testFixture) seed(t *testing.T, description string, amount int64, txnType entity.TransactionType, date time.Time) {
	t.Helper()
	txn := entity.NewTransaction(
		f.userID,
		date,
		description,
		decimal.NewFromInt(amount),
		txnType,
		f.category.ID,
		f.pocket.ID,
		nil,
	)
	if err := f.transactionRepo.Create(context.Background(), txn); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
}

func TestExportTransactionsCSV(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	f.seed(t, "Weekly shop", 50, entity.TransactionTypeExpense, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	f.seed(t, "Salary", 2000, entity.TransactionTypeIncome, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	output, err := f.exportUC.Execute(ctx, ExportTransactionsInput{
		UserID: f.userID,
		Format: ExportFormatCSV,
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if output.ContentType != "text/csv" {
		t.Fatalf("content type = %q, want text/csv", output.ContentType)
	}

	rows, err := csv.NewReader(bytes.NewReader(output.Data)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("CSV rows = %d, want 3 (header + 2)", len(rows))
	}
	wantHeader := []string{"date", "description", "amount", "type", "category", "pocket"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Fatalf("header column %d = %q, want %q", i, rows[0][i], col)
		}
	}

	// Oldest entry first.
	if rows[1][1] != "Salary" || rows[1][2] != "2000.00" || rows[1][3] != "income" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][1] != "Weekly shop" || rows[2][4] != "Groceries" || rows[2][5] != "Main" {
		t.Fatalf("unexpected second row: %v", rows[2])
	}
}

func TestExportTransactionsJSON(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	f.seed(t, "Weekly shop", 50, entity.TransactionTypeExpense, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	output, err := f.exportUC.Execute(ctx, ExportTransactionsInput{
		UserID: f.userID,
		Format: ExportFormatJSON,
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if output.ContentType != "application/json" {
		t.Fatalf("content type = %q, want application/json", output.ContentType)
	}

	var records []map[string]string
	if err := json.Unmarshal(output.Data, &records); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0]["description"] != "Weekly shop" || records[0]["amount"] != "50.00" {
		t.Fatalf("unexpected record: %v", records[0])
	}
}

func TestExportTransactionsRespectsDateRange(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	f.seed(t, "In range", 10, entity.TransactionTypeExpense, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	f.seed(t, "Out of range", 10, entity.TransactionTypeExpense, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

	output, err := f.exportUC.Execute(ctx, ExportTransactionsInput{
		UserID:    f.userID,
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Format:    ExportFormatCSV,
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(output.Data)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("CSV rows = %d, want 2 (header + 1)", len(rows))
	}
	if rows[1][1] != "In range" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}

func TestExportTransactionsInvalidFormat(t *testing.T) {
	f := newTestFixture(t)

	_, err := f.exportUC.Execute(context.Background(), ExportTransactionsInput{
		UserID: f.userID,
		Format: "xml",
	})
	if !errors.Is(err, ErrInvalidExportFormat) {
		t.Fatalf("expected ErrInvalidExportFormat, got %v", err)
	}
}

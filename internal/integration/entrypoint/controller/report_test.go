package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/application/usecase/budget"
	"github.com/pocketfin/backend/internal/application/usecase/report"
	"github.com/pocketfin/backend/internal/domain/entity"
	"github.com/pocketfin/backend/internal/integration/persistence"
	"github.com/pocketfin/backend/internal/integration/persistence/model"
)

type reportTestFixture struct {
	router *gin.Engine

	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	budgetRepo      adapter.BudgetRepository
	pocketRepo      adapter.PocketRepository

	userID uuid.UUID
	pocket *entity.Pocket
}

func newReportTestFixture(t *testing.T) *reportTestFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t,
		&model.CategoryModel{},
		&model.PocketModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
	)

	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	pocketRepo := persistence.NewPocketRepository(db)

	controller := NewReportController(
		report.NewGetSummaryUseCase(transactionRepo),
		report.NewGetTrendsUseCase(transactionRepo),
		report.NewGetCategoryBreakdownUseCase(transactionRepo),
		report.NewExportTransactionsUseCase(transactionRepo),
		budget.NewGetBudgetSummaryUseCase(budgetRepo, transactionRepo),
	)

	userID := uuid.New()
	router := gin.New()
	reports := router.Group("/reports", identify(userID))
	{
		reports.GET("/summary", controller.Summary)
		reports.GET("/trends", controller.Trends)
		reports.GET("/budgets", controller.Budgets)
		reports.POST("/export", controller.Export)
	}

	pocket := entity.NewPocket(userID, "Main", "wallet", true)
	if err := pocketRepo.Create(context.Background(), pocket); err != nil {
		t.Fatalf("failed to create pocket: %v", err)
	}

	return &reportTestFixture{
		router:          router,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
		pocketRepo:      pocketRepo,
		userID:          userID,
		pocket:          pocket,
	}
}

func (f *reportTestFixture) newCategory(t *testing.T, name string) *entity.Category {
	t.Helper()
	cat := entity.NewCategory(f.userID, name, "cart", "#22C55E", entity.CategoryTypeExpense)
	if err := f.categoryRepo.Create(context.Background(), cat); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return cat
}

func (f *reportTestFixture) seed(t *testing.T, categoryID uuid.UUID, description string, amount int64, txnType entity.TransactionType, date time.Time) {
	t.Helper()
	txn := entity.NewTransaction(f.userID, date, description, decimal.NewFromInt(amount), txnType, categoryID, f.pocket.ID, nil)
	if err := f.transactionRepo.Create(context.Background(), txn); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
}

func TestReportSummaryResponseShape(t *testing.T) {
	f := newReportTestFixture(t)

	cat := f.newCategory(t, "Groceries")
	f.seed(t, cat.ID, "Salary", 2000, entity.TransactionTypeIncome, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	f.seed(t, cat.ID, "Rent", 500, entity.TransactionTypeExpense, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/reports/summary?start_date=2025-03-01&end_date=2025-03-31", nil)
	f.router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var body struct {
		Period struct {
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
		} `json:"period"`
		Totals struct {
			Income      string `json:"income"`
			Expenses    string `json:"expenses"`
			NetIncome   string `json:"net_income"`
			SavingsRate string `json:"savings_rate"`
		} `json:"totals"`
		TransactionCount struct {
			Total   int `json:"total"`
			Income  int `json:"income"`
			Expense int `json:"expense"`
		} `json:"transaction_count"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if body.Totals.Income != "2000.00" || body.Totals.Expenses != "500.00" {
		t.Fatalf("unexpected totals: %+v", body.Totals)
	}
	// 1500 kept out of 2000 earned.
	if body.Totals.SavingsRate != "75.00" {
		t.Fatalf("savings rate = %q, want 75.00", body.Totals.SavingsRate)
	}
	if body.TransactionCount.Total != 2 || body.TransactionCount.Income != 1 || body.TransactionCount.Expense != 1 {
		t.Fatalf("unexpected counts: %+v", body.TransactionCount)
	}
	if body.Period.StartDate != "2025-03-01" {
		t.Fatalf("period start = %q, want 2025-03-01", body.Period.StartDate)
	}
}

func TestReportTrendsListsTransactions(t *testing.T) {
	f := newReportTestFixture(t)

	cat := f.newCategory(t, "Groceries")
	f.seed(t, cat.ID, "Second", 20, entity.TransactionTypeExpense, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	f.seed(t, cat.ID, "First", 10, entity.TransactionTypeExpense, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/reports/trends?start_date=2025-03-01&end_date=2025-03-31", nil)
	f.router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var body struct {
		Transactions []struct {
			Description string `json:"description"`
			Date        string `json:"date"`
		} `json:"transactions"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(body.Transactions) != 2 {
		t.Fatalf("transactions = %d, want 2", len(body.Transactions))
	}
	if body.Transactions[0].Description != "First" || body.Transactions[1].Description != "Second" {
		t.Fatalf("transactions not in ascending date order: %+v", body.Transactions)
	}
}

func TestReportBudgetsIncludesStatistics(t *testing.T) {
	f := newReportTestFixture(t)
	ctx := context.Background()

	groceries := f.newCategory(t, "Groceries")
	dining := f.newCategory(t, "Dining")
	now := time.Now().UTC()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for _, cat := range []*entity.Category{groceries, dining} {
		b := entity.NewBudget(f.userID, cat.ID, decimal.NewFromInt(100), entity.BudgetPeriodMonthly, startDate, true)
		if err := f.budgetRepo.Create(ctx, b); err != nil {
			t.Fatalf("failed to create budget: %v", err)
		}
	}

	// 90/100 is near the limit, 120/100 is over it.
	f.seed(t, groceries.ID, "Weekly shop", 90, entity.TransactionTypeExpense, now)
	f.seed(t, dining.ID, "Dinners", 120, entity.TransactionTypeExpense, now)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/reports/budgets", nil)
	f.router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var body struct {
		Statistics struct {
			TotalBudgets  int    `json:"total_budgets"`
			OnTrack       int    `json:"on_track"`
			NearLimit     int    `json:"near_limit"`
			OverBudget    int    `json:"over_budget"`
			TotalBudgeted string `json:"total_budgeted"`
			TotalSpent    string `json:"total_spent"`
		} `json:"statistics"`
		Budgets []json.RawMessage `json:"budgets"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	stats := body.Statistics
	if stats.TotalBudgets != 2 {
		t.Fatalf("total budgets = %d, want 2", stats.TotalBudgets)
	}
	if stats.NearLimit != 1 || stats.OverBudget != 1 || stats.OnTrack != 0 {
		t.Fatalf("unexpected status counts: %+v", stats)
	}
	if stats.TotalBudgeted != "200.00" {
		t.Fatalf("total budgeted = %q, want 200.00", stats.TotalBudgeted)
	}
	if stats.TotalSpent != "210.00" {
		t.Fatalf("total spent = %q, want 210.00", stats.TotalSpent)
	}
	if len(body.Budgets) != 2 {
		t.Fatalf("budgets = %d, want 2", len(body.Budgets))
	}
}

func TestReportExportAcceptsBody(t *testing.T) {
	f := newReportTestFixture(t)

	cat := f.newCategory(t, "Groceries")
	f.seed(t, cat.ID, "Weekly shop", 50, entity.TransactionTypeExpense, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(
		http.MethodPost,
		"/reports/export",
		strings.NewReader(`{"start_date":"2025-03-01","end_date":"2025-03-31","format":"csv"}`),
	)
	request.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("content type = %q, want text/csv", got)
	}
	if got := recorder.Header().Get("Content-Disposition"); !strings.HasPrefix(got, "attachment;") {
		t.Fatalf("content disposition = %q, want attachment", got)
	}
	lines := strings.Split(strings.TrimSpace(recorder.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("CSV lines = %d, want 2 (header + 1)", len(lines))
	}
	if !strings.Contains(lines[1], "Weekly shop") {
		t.Fatalf("unexpected data row: %q", lines[1])
	}

	badFormat := httptest.NewRecorder()
	request = httptest.NewRequest(
		http.MethodPost,
		"/reports/export",
		strings.NewReader(`{"format":"xml"}`),
	)
	request.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(badFormat, request)
	if badFormat.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", badFormat.Code)
	}
}

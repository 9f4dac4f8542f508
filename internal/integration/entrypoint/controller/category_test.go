package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pocketfin/backend/internal/application/usecase/category"
	"github.com/pocketfin/backend/internal/domain/entity"
	"github.com/pocketfin/backend/internal/integration/entrypoint/middleware"
	"github.com/pocketfin/backend/internal/integration/persistence"
	"github.com/pocketfin/backend/internal/integration/persistence/model"
)

// newTestDB opens an isolated in-memory database with the given models migrated.
func newTestDB(t *testing.T, models ...interface{}) *gorm.DB {
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

	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// identify returns a middleware that injects the user ID like a validated token would.
func identify(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(middleware.UserIDKey), userID)
		c.Next()
	}
}

func TestDeleteCategoryInUseResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	db := newTestDB(t,
		&model.CategoryModel{},
		&model.PocketModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.RecurringTransactionModel{},
	)

	txManager := persistence.NewTxManager(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	recurringRepo := persistence.NewRecurringRepository(db)
	pocketRepo := persistence.NewPocketRepository(db)

	controller := NewCategoryController(
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewCreateCategoryUseCase(categoryRepo),
		category.NewUpdateCategoryUseCase(categoryRepo),
		category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo, budgetRepo, recurringRepo, pocketRepo, txManager),
	)

	userID := uuid.New()
	router := gin.New()
	router.DELETE("/categories/:id", identify(userID), controller.Delete)

	cat := entity.NewCategory(userID, "Groceries", "cart", "#22C55E", entity.CategoryTypeExpense)
	if err := categoryRepo.Create(ctx, cat); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	pocket := entity.NewPocket(userID, "Main", "wallet", true)
	if err := pocketRepo.Create(ctx, pocket); err != nil {
		t.Fatalf("failed to create pocket: %v", err)
	}
	txn := entity.NewTransaction(
		userID,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		"Weekly shop",
		decimal.NewFromInt(50),
		entity.TransactionTypeExpense,
		cat.ID,
		pocket.ID,
		nil,
	)
	if err := transactionRepo.Create(ctx, txn); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/categories/"+cat.ID.String(), nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["canForceDelete"] != true {
		t.Fatalf("canForceDelete = %v, want true", body["canForceDelete"])
	}
	if body["usageCount"] != float64(1) {
		t.Fatalf("usageCount = %v, want 1", body["usageCount"])
	}
	if body["table"] != "transactions" {
		t.Fatalf("table = %v, want transactions", body["table"])
	}
	if body["error"] == "" || body["code"] == "" {
		t.Fatalf("error details missing from response: %v", body)
	}

	// The category survives the blocked deletion.
	if _, err := categoryRepo.FindByID(ctx, cat.ID); err != nil {
		t.Fatalf("category was deleted despite being in use: %v", err)
	}
}

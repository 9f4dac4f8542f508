package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

func TestUpdateTransactionReappliesBalanceEffect(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	created, err := f.createUC.Execute(ctx, CreateTransactionInput{
		UserID:      f.userID,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Weekly shop",
		Amount:      decimal.NewFromInt(50),
		Type:        entity.TransactionTypeExpense,
		CategoryID:  f.category.ID,
	})
	if err != nil {
		t.Fatalf("creation failed: %v", err)
	}

	newAmount := decimal.NewFromInt(30)
	if _, err := f.updateUC.Execute(ctx, UpdateTransactionInput{
		TransactionID: created.Transaction.ID,
		UserID:        f.userID,
		Amount:        &newAmount,
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if got := f.pocketBalance(t, f.pocket.ID); !got.Equal(decimal.NewFromInt(-30)) {
		t.Fatalf("balance after amount change = %s, want -30", got)
	}

	newType := entity.TransactionTypeIncome
	if _, err := f.updateUC.Execute(ctx, UpdateTransactionInput{
		TransactionID: created.Transaction.ID,
		UserID:        f.userID,
		Type:          &newType,
	}); err != nil {
		t.Fatalf("type change failed: %v", err)
	}

	if got := f.pocketBalance(t, f.pocket.ID); !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("balance after type flip = %s, want 30", got)
	}
}

func TestUpdateTransactionMovesBetweenPockets(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	savings := entity.NewPocket(f.userID, "Savings", "piggy-bank", false)
	if err := f.pocketRepo.Create(ctx, savings); err != nil {
		t.Fatalf("failed to create pocket: %v", err)
	}

	created, err := f.createUC.Execute(ctx, CreateTransactionInput{
		UserID:      f.userID,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Weekly shop",
		Amount:      decimal.NewFromInt(40),
		Type:        entity.TransactionTypeExpense,
		CategoryID:  f.category.ID,
	})
	if err != nil {
		t.Fatalf("creation failed: %v", err)
	}

	if _, err := f.updateUC.Execute(ctx, UpdateTransactionInput{
		TransactionID: created.Transaction.ID,
		UserID:        f.userID,
		PocketID:      &savings.ID,
	}); err != nil {
		t.Fatalf("pocket move failed: %v", err)
	}

	if got := f.pocketBalance(t, f.pocket.ID); !got.IsZero() {
		t.Fatalf("old pocket balance = %s, want 0", got)
	}
	if got := f.pocketBalance(t, savings.ID); !got.Equal(decimal.NewFromInt(-40)) {
		t.Fatalf("new pocket balance = %s, want -40", got)
	}
}

func TestUpdateTransactionAuthorization(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	created, err := f.createUC.Execute(ctx, CreateTransactionInput{
		UserID:      f.userID,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Weekly shop",
		Amount:      decimal.NewFromInt(50),
		Type:        entity.TransactionTypeExpense,
		CategoryID:  f.category.ID,
	})
	if err != nil {
		t.Fatalf("creation failed: %v", err)
	}

	description := "hijacked"
	_, err = f.updateUC.Execute(ctx, UpdateTransactionInput{
		TransactionID: created.Transaction.ID,
		UserID:        uuid.New(),
		Description:   &description,
	})
	assertTransactionErrorCode(t, err, domainerror.ErrCodeNotAuthorizedTransaction)

	_, err = f.updateUC.Execute(ctx, UpdateTransactionInput{
		TransactionID: uuid.New(),
		UserID:        f.userID,
		Description:   &description,
	})
	assertTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotFound)
}

func TestDeleteTransactionReversesBalanceEffect(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	created, err := f.createUC.Execute(ctx, CreateTransactionInput{
		UserID:      f.userID,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Weekly shop",
		Amount:      decimal.NewFromInt(50),
		Type:        entity.TransactionTypeExpense,
		CategoryID:  f.category.ID,
	})
	if err != nil {
		t.Fatalf("creation failed: %v", err)
	}

	if err := f.deleteUC.Execute(ctx, DeleteTransactionInput{
		TransactionID: created.Transaction.ID,
		UserID:        f.userID,
	}); err != nil {
		t.Fatalf("deletion failed: %v", err)
	}

	if got := f.pocketBalance(t, f.pocket.ID); !got.IsZero() {
		t.Fatalf("balance after delete = %s, want 0", got)
	}

	output, err := f.listUC.Execute(ctx, ListTransactionsInput{UserID: f.userID})
	if err != nil {
		t.Fatalf("listing failed: %v", err)
	}
	if len(output.Transactions) != 0 {
		t.Fatalf("transaction count after delete = %d, want 0", len(output.Transactions))
	}
}

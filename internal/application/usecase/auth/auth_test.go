package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pocketfin/backend/internal/application/adapter"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
	"github.com/pocketfin/backend/internal/integration/adapters"
	"github.com/pocketfin/backend/internal/integration/persistence"
	"github.com/pocketfin/backend/internal/integration/persistence/model"
)

// testFixture wires the auth use cases against an in-memory database with the
// real password and token services.
type testFixture struct {
	registerUC *RegisterUserUseCase
	loginUC    *LoginUserUseCase
	refreshUC  *RefreshTokenUseCase
	logoutUC   *LogoutUserUseCase

	userRepo     adapter.UserRepository
	pocketRepo   adapter.PocketRepository
	tokenService adapter.TokenService
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
		&model.UserModel{},
		&model.PocketModel{},
		&model.RefreshTokenModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	txManager := persistence.NewTxManager(db)
	userRepo := persistence.NewUserRepository(db)
	pocketRepo := persistence.NewPocketRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService("test-secret", tokenRepo)

	return &testFixture{
		registerUC:   NewRegisterUserUseCase(userRepo, pocketRepo, passwordService, tokenService, txManager),
		loginUC:      NewLoginUserUseCase(userRepo, passwordService, tokenService),
		refreshUC:    NewRefreshTokenUseCase(tokenService),
		logoutUC:     NewLogoutUserUseCase(tokenService),
		userRepo:     userRepo,
		pocketRepo:   pocketRepo,
		tokenService: tokenService,
	}
}

func (f *testFixture) register(t *testing.T, email, password string) *RegisterUserOutput {
	t.Helper()
	output, err := f.registerUC.Execute(context.Background(), RegisterUserInput{
		Email:    email,
		Name:     "Test User",
		Password: password,
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	return output
}

func assertAuthErrorCode(t *testing.T, err error, want domainerror.AuthErrorCode) {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %T: %v", err, err)
	}
	if authErr.Code != want {
		t.Fatalf("error code = %s, want %s", authErr.Code, want)
	}
}

func TestRegisterCreatesUserAndDefaultPocket(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	output := f.register(t, "Alice@Example.com", "correct-horse")

	// Email is normalized to lower case.
	if output.User.Email != "alice@example.com" {
		t.Fatalf("email = %q, want alice@example.com", output.User.Email)
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Fatal("registration did not return a token pair")
	}

	// The access token is immediately usable.
	claims, err := f.tokenService.ValidateAccessToken(ctx, output.AccessToken)
	if err != nil {
		t.Fatalf("access token rejected: %v", err)
	}
	if claims.UserID != output.User.ID {
		t.Fatalf("claims user = %s, want %s", claims.UserID, output.User.ID)
	}

	// Registration seeds a default pocket so ledger writes have a home.
	def, err := f.pocketRepo.FindDefault(ctx, output.User.ID)
	if err != nil {
		t.Fatalf("default pocket lookup failed: %v", err)
	}
	if def.Name != "Main" || !def.IsDefault {
		t.Fatalf("unexpected default pocket: %+v", def)
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	_, err := f.registerUC.Execute(ctx, RegisterUserInput{
		Email:    "not-an-email",
		Name:     "Test User",
		Password: "correct-horse",
	})
	assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidEmail)

	_, err = f.registerUC.Execute(ctx, RegisterUserInput{
		Email:    "bob@example.com",
		Name:     "Test User",
		Password: "short",
	})
	assertAuthErrorCode(t, err, domainerror.ErrCodeWeakPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newTestFixture(t)

	f.register(t, "alice@example.com", "correct-horse")

	_, err := f.registerUC.Execute(context.Background(), RegisterUserInput{
		Email:    "ALICE@example.com",
		Name:     "Someone Else",
		Password: "another-pass",
	})
	assertAuthErrorCode(t, err, domainerror.ErrCodeEmailExists)
}

func TestLogin(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	registered := f.register(t, "alice@example.com", "correct-horse")

	output, err := f.loginUC.Execute(ctx, LoginUserInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if output.User.ID != registered.User.ID {
		t.Fatal("login returned a different user")
	}

	// Wrong password and unknown email collapse into the same generic error.
	_, err = f.loginUC.Execute(ctx, LoginUserInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidCredentials)

	_, err = f.loginUC.Execute(ctx, LoginUserInput{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	registered := f.register(t, "alice@example.com", "correct-horse")

	refreshed, err := f.refreshUC.Execute(ctx, RefreshTokenInput{
		RefreshToken: registered.RefreshToken,
	})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Fatal("refresh did not return a token pair")
	}

	// The presented refresh token is single use.
	_, err = f.refreshUC.Execute(ctx, RefreshTokenInput{
		RefreshToken: registered.RefreshToken,
	})
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Fatalf("reused refresh token: expected ErrInvalidToken, got %v", err)
	}

	// The rotated token still works.
	if _, err := f.refreshUC.Execute(ctx, RefreshTokenInput{
		RefreshToken: refreshed.RefreshToken,
	}); err != nil {
		t.Fatalf("rotated refresh token rejected: %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	f := newTestFixture(t)

	registered := f.register(t, "alice@example.com", "correct-horse")

	_, err := f.refreshUC.Execute(context.Background(), RefreshTokenInput{
		RefreshToken: registered.AccessToken,
	})
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	registered := f.register(t, "alice@example.com", "correct-horse")

	if err := f.logoutUC.Execute(ctx, LogoutUserInput{RefreshToken: registered.RefreshToken}); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	_, err := f.refreshUC.Execute(ctx, RefreshTokenInput{RefreshToken: registered.RefreshToken})
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Fatalf("revoked token still refreshes: %v", err)
	}

	// Logout is idempotent.
	if err := f.logoutUC.Execute(ctx, LogoutUserInput{RefreshToken: registered.RefreshToken}); err != nil {
		t.Fatalf("repeated logout failed: %v", err)
	}
}

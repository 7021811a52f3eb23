package impl

import (
	"context"
	"testing"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	mockRepo "accounts/internal/mocks/repository"
	mockSvc "accounts/internal/mocks/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockedAccountServiceFixtures holds mocks for fault-injection tests.
type mockedAccountServiceFixtures struct {
	service     usecase.AccountUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenService
	publisher   *mockSvc.MockEventPublisher
}

func createMockedAccountService(t *testing.T) mockedAccountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Tokens:      tokens,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})
	t.Cleanup(func() { waitForEvents(svc) })

	return mockedAccountServiceFixtures{
		service:     svc,
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
		tokens:      tokens,
		publisher:   publisher,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{Name: "Ana", Email: "a@x.com", Phone: "1", Password: "p1", ConfirmPassword: "p1"}
}

// runInTx makes the mocked transaction manager call straight through to fn with factory.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAccountService_Register_LookupFailure(t *testing.T) {
	fx := createMockedAccountService(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find account by email")

	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, dbErr)

	_, err := fx.service.Register(ctx, validRegisterInput())

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindPersistence, domainerrors.KindOf(err))
}

func TestAccountService_Register_UniqueViolationAtWrite(t *testing.T) {
	fx := createMockedAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(ctx, "p1").Return("$2a$04$hash", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrEmailAlreadyUsed.WrapMessage("email already exists"))

	_, err := fx.service.Register(ctx, validRegisterInput())

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	fx.tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishAccountEvent", mock.Anything, mock.Anything)
}

func TestAccountService_Register_HashFailures(t *testing.T) {
	tests := []struct {
		name     string
		hashErr  error
		wantKind domainerrors.Kind
		target   error
	}{
		{name: "too long", hashErr: service.ErrPasswordTooLong, wantKind: domainerrors.KindValidation, target: domainerrors.ErrPasswordTooLong},
		{name: "rng failure", hashErr: errors.New("entropy source unavailable"), wantKind: domainerrors.KindInternal, target: domainerrors.ErrPasswordHashFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createMockedAccountService(t)
			ctx := context.Background()

			fx.accountRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrAccountNotFound)
			fx.hasher.EXPECT().Hash(ctx, "p1").Return("", tt.hashErr)

			_, err := fx.service.Register(ctx, validRegisterInput())

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domainerrors.KindOf(err))
			assert.True(t, errors.Is(err, tt.target))
			fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAccountService_Register_TokenIssueFailure(t *testing.T) {
	fx := createMockedAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(ctx, "p1").Return("$2a$04$hash", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			account.ID = uuid.New()
		}).
		Return(nil)
	fx.tokens.EXPECT().Issue(mock.Anything, "Ana").Return("", errors.New("signing failed"))

	_, err := fx.service.Register(ctx, validRegisterInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestAccountService_Login_LookupFailure(t *testing.T) {
	fx := createMockedAccountService(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to find account by email")

	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, dbErr)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "p1"})

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindPersistence, domainerrors.KindOf(err))
	fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_Login_CheckAbortedByContext(t *testing.T) {
	fx := createMockedAccountService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	account := &entity.Account{ID: uuid.New(), Email: "a@x.com", PasswordHash: "$2a$04$hash"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(account, nil)
	fx.hasher.EXPECT().Check(ctx, "p1", account.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "p1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	fx.tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAccountService_Login_IssuesTokenWithLifetime(t *testing.T) {
	fx := createMockedAccountService(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Name: "Ana", Email: "a@x.com", PasswordHash: "$2a$04$hash"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(account, nil)
	fx.hasher.EXPECT().Check(ctx, "p1", account.PasswordHash).Return(true)
	fx.tokens.EXPECT().Issue(account.ID, "Ana").Return("tok", nil)
	fx.tokens.EXPECT().TokenTTL().Return(30 * time.Minute)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "p1"})

	require.NoError(t, err)
	assert.Equal(t, "tok", out.Token)
	assert.Equal(t, 30*time.Minute, out.ExpiresIn)
}

func TestAccountService_Delete_PostFailureSkipsAccountDelete(t *testing.T) {
	fx := createMockedAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	txAccountRepo := mockRepo.NewMockAccountRepository(t)

	fx.tokens.EXPECT().ResolveAccount("token").Return(&entity.Identity{AccountID: accountID}, true)
	runInTx(fx.txManager, factory)
	factory.EXPECT().PostRepo().Return(postRepo)
	postRepo.EXPECT().
		DeleteByOwnerID(ctx, accountID).
		Return(0, domainerrors.NewDatabaseExecuteError(errors.New("lock timeout"), "failed to delete posts by owner"))

	_, err := fx.service.DeleteAccount(ctx, accountID, "token")

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindPersistence, domainerrors.KindOf(err))
	factory.AssertNotCalled(t, "AccountRepo")
	txAccountRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishAccountEvent", mock.Anything, mock.Anything)
}

func TestAccountService_Delete_Success(t *testing.T) {
	fx := createMockedAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	txAccountRepo := mockRepo.NewMockAccountRepository(t)

	fx.tokens.EXPECT().ResolveAccount("token").Return(&entity.Identity{AccountID: accountID}, true)
	runInTx(fx.txManager, factory)
	factory.EXPECT().PostRepo().Return(postRepo)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	postRepo.EXPECT().DeleteByOwnerID(ctx, accountID).Return(3, nil)
	txAccountRepo.EXPECT().Delete(ctx, accountID).Return(nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.MatchedBy(func(e *entity.AccountEvent) bool {
			return e.AccountID == accountID && e.DeletedPosts == 3
		})).
		Return(nil)

	out, err := fx.service.DeleteAccount(ctx, accountID, "token")

	require.NoError(t, err)
	assert.Equal(t, int64(3), out.DeletedPosts)
	waitForEvents(fx.service)
}

func TestAccountService_Edit_UpdateFailure(t *testing.T) {
	fx := createMockedAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()
	current := &entity.Account{ID: accountID, Name: "Ana", Email: "a@x.com", Phone: "1", PasswordHash: "old"}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAccountRepo := mockRepo.NewMockAccountRepository(t)

	fx.tokens.EXPECT().ResolveAccount("token").Return(&entity.Identity{AccountID: accountID}, true)
	runInTx(fx.txManager, factory)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	txAccountRepo.EXPECT().FindByID(ctx, accountID).Return(current, nil)
	txAccountRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Name == "Ana B" && a.PasswordHash == "old"
		})).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("deadlock"), "failed to update account"))

	_, err := fx.service.EditAccount(ctx, accountID, "token", &usecase.EditAccountInput{
		Name: "Ana B", Email: "a@x.com", Phone: "1",
	})

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindPersistence, domainerrors.KindOf(err))
	assert.Equal(t, "Ana", current.Name, "the loaded record must not be mutated in place")
}

func TestAccountService_Edit_NilTargetIsNotOwned(t *testing.T) {
	fx := createMockedAccountService(t)

	fx.tokens.EXPECT().ResolveAccount("token").Return(&entity.Identity{AccountID: uuid.New()}, true)

	_, err := fx.service.EditAccount(context.Background(), uuid.Nil, "token", &usecase.EditAccountInput{
		Name: "Ana", Email: "a@x.com", Phone: "1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotAccountOwner))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

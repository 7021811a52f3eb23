// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/constants"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventPublishTimeout bounds a single account event delivery. Publishing runs
// after the response and is detached from the request's cancellation.
const eventPublishTimeout = 10 * time.Second

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time

	// events tracks in-flight publishes so shutdown can wait for them.
	events sync.WaitGroup
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Publisher   service.EventPublisher
	Logger      *slog.Logger
	Lc          fx.Lifecycle `optional:"true"`
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: srv.waitForEvents,
		})
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and logs it in.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if err := requireFields(
		field{"name", input.Name},
		field{"email", input.Email},
		field{"phone", input.Phone},
		field{"password", input.Password},
		field{"confirmpassword", input.ConfirmPassword},
	); err != nil {
		return nil, err
	}
	if input.Password != input.ConfirmPassword {
		return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	// Fast path only: the unique index is the authoritative guard against a concurrent registration.
	if err := srv.ensureEmailAvailable(ctx, srv.accountRepo, input.Email, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := srv.hashPassword(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	account := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindConflict {
			srv.log(ctx).Info("Registration lost email race", slog.String("email", input.Email))

			return nil, err
		}
		srv.log(ctx).Error("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	output, err := srv.authenticate(account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account registered", slog.String("account_id", account.ID.String()))
	srv.publish(ctx, &entity.AccountEvent{
		Type:      constants.EventAccountRegistered,
		AccountID: account.ID,
		Email:     account.Email,
	})

	return output, nil
}

// Login verifies the credentials and issues a token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if err := requireFields(
		field{"email", input.Email},
		field{"password", input.Password},
	); err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.WithStack(domainerrors.ErrAccountNotFound.WithDetails("no account is registered with this email"))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(ctx, input.Password, account.PasswordHash) {
		// Check also fails when it never ran; that is not a credential problem.
		if ctxErr := ctx.Err(); ctxErr != nil {
			srv.log(ctx).Warn("Login aborted before password check", slog.Any("error", ctxErr))

			return nil, errors.Wrap(domainerrors.ErrInternalError, ctxErr.Error())
		}

		srv.log(ctx).Info("Login rejected", slog.String("account_id", account.ID.String()))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return srv.authenticate(account)
}

// EditAccount validates every proposed change into a draft and writes it in one
// transaction. A rejected edit leaves the stored account untouched.
func (srv *accountService) EditAccount(
	ctx context.Context,
	targetID uuid.UUID,
	callerToken string,
	input *usecase.EditAccountInput,
) (*entity.Account, error) {
	if err := srv.authorizeOwner(callerToken, targetID); err != nil {
		return nil, err
	}

	if err := requireFields(
		field{"name", input.Name},
		field{"email", input.Email},
		field{"phone", input.Phone},
	); err != nil {
		return nil, err
	}

	draft := entity.AccountDraft{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	if input.Password != "" || input.ConfirmPassword != "" {
		if err := requireFields(
			field{"password", input.Password},
			field{"confirmpassword", input.ConfirmPassword},
		); err != nil {
			return nil, err
		}
		if input.Password != input.ConfirmPassword {
			return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
		}

		hash, err := srv.hashPassword(ctx, input.Password)
		if err != nil {
			return nil, err
		}
		draft.PasswordHash = hash
	}

	var updated entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		current, err := accountRepo.FindByID(ctx, targetID)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails("account no longer exists"))
		}
		if err != nil {
			return errors.Wrap(err, "failed to load account")
		}

		if current.Email != draft.Email {
			if err := srv.ensureEmailAvailable(ctx, accountRepo, draft.Email, current.ID); err != nil {
				return err
			}
		}

		updated = draft.Apply(*current)
		if err := accountRepo.Update(ctx, &updated); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails("account no longer exists"))
			}

			return errors.Wrap(err, "failed to update account")
		}

		return nil
	})
	if err != nil {
		srv.logFailure(ctx, "Failed to edit account", targetID, err)

		return nil, err
	}

	srv.log(ctx).Info("Account updated",
		slog.String("account_id", targetID.String()),
		slog.Bool("password_changed", draft.PasswordHash != ""),
	)

	return &updated, nil
}

// DeleteAccount removes the account's posts and then the account in one
// transaction, so a failed post deletion leaves everything in place.
func (srv *accountService) DeleteAccount(ctx context.Context, targetID uuid.UUID, callerToken string) (*usecase.DeleteOutput, error) {
	if err := srv.authorizeOwner(callerToken, targetID); err != nil {
		return nil, err
	}

	var deletedPosts int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.PostRepo().DeleteByOwnerID(ctx, targetID)
		if err != nil {
			return errors.Wrap(err, "failed to delete account posts")
		}
		deletedPosts = n

		err = repoFactory.AccountRepo().Delete(ctx, targetID)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails("account no longer exists"))
		}
		if err != nil {
			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})
	if err != nil {
		srv.logFailure(ctx, "Failed to delete account", targetID, err)

		return nil, err
	}

	srv.log(ctx).Info("Account deleted",
		slog.String("account_id", targetID.String()),
		slog.Int64("deleted_posts", deletedPosts),
	)
	srv.publish(ctx, &entity.AccountEvent{
		Type:         constants.EventAccountDeleted,
		AccountID:    targetID,
		DeletedPosts: deletedPosts,
	})

	return &usecase.DeleteOutput{DeletedPosts: deletedPosts}, nil
}

// GetByID is a public lookup.
func (srv *accountService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.WithStack(domainerrors.ErrAccountNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// GetSelf returns the account the token belongs to. A token for a deleted
// account is treated as no token at all.
func (srv *accountService) GetSelf(ctx context.Context, callerToken string) (*entity.Account, error) {
	identity, ok := srv.tokens.ResolveAccount(callerToken)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	account, err := srv.accountRepo.FindByID(ctx, identity.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails("account no longer exists"))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// --- helpers ---

type field struct {
	name  string
	value string
}

// requireFields reports the first blank field, in the order given.
func requireFields(fields ...field) error {
	for _, f := range fields {
		if f.value == "" {
			return domainerrors.Required(f.name)
		}
	}

	return nil
}

// authorizeOwner resolves the caller and rejects anyone but the target account.
// An unusable token and a foreign token fail the same way.
func (srv *accountService) authorizeOwner(callerToken string, targetID uuid.UUID) error {
	identity, ok := srv.tokens.ResolveAccount(callerToken)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if targetID == uuid.Nil || identity.AccountID != targetID {
		return errors.WithStack(domainerrors.ErrNotAccountOwner)
	}

	return nil
}

// ensureEmailAvailable fails with a conflict when email belongs to an account other than owner.
func (srv *accountService) ensureEmailAvailable(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	email string,
	owner uuid.UUID,
) error {
	existing, err := accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check email availability")
	}
	if existing.ID != owner {
		return errors.WithStack(domainerrors.ErrEmailAlreadyUsed)
	}

	return nil
}

func (srv *accountService) hashPassword(ctx context.Context, password string) (string, error) {
	hash, err := srv.hasher.Hash(ctx, password)
	if errors.Is(err, service.ErrPasswordTooLong) {
		return "", errors.WithStack(domainerrors.ErrPasswordTooLong)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hash, nil
}

func (srv *accountService) authenticate(account *entity.Account) (*usecase.AuthOutput, error) {
	token, err := srv.tokens.Issue(account.ID, account.Name)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresIn: srv.tokens.TokenTTL(),
		AccountID: account.ID,
		Account:   account,
	}, nil
}

// publish is best effort: the change is already committed, so a failure is only
// logged. Delivery runs in the background and outlives the request.
func (srv *accountService) publish(ctx context.Context, event *entity.AccountEvent) {
	if srv.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = srv.now().UTC()

	logger := srv.log(ctx)
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)

	srv.events.Add(1)
	go func() {
		defer srv.events.Done()
		defer cancel()

		if err := srv.publisher.PublishAccountEvent(publishCtx, event); err != nil {
			logger.Warn("Failed to publish account event",
				slog.String("event_type", event.Type),
				slog.String("account_id", event.AccountID.String()),
				slog.Any("error", err),
			)
		}
	}()
}

// waitForEvents blocks until in-flight publishes finish or ctx ends.
func (srv *accountService) waitForEvents(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		srv.events.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "account events still publishing")
	}
}

// logFailure logs unexpected failures at error and expected rejections at info.
func (srv *accountService) logFailure(ctx context.Context, msg string, accountID uuid.UUID, err error) {
	level := slog.LevelInfo
	switch domainerrors.KindOf(err) {
	case domainerrors.KindPersistence, domainerrors.KindInternal:
		level = slog.LevelError
	}

	srv.log(ctx).Log(ctx, level, msg,
		slog.String("account_id", accountID.String()),
		slog.Any("error", err),
	)
}

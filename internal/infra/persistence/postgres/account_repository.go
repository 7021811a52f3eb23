package postgres

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository returns the repository as the domain interface.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail reads from the primary so a freshly registered email is never missed
// because of replica lag.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. The ID is a UUIDv7 so rows stay roughly
// insertion ordered on the primary key index.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	if accountM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to generate account id")
		}
		accountM.ID = id
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyUsed.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update writes the editable columns only; id and created_at are never touched.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	accountM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{ID: account.ID}).
		Select("name", "email", "phone", "password_hash", "updated_at").
		Updates(accountM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyUsed.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Delete removes the account row. Posts must already be gone; the foreign key
// rejects the delete otherwise.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AccountModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "account still owns posts")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

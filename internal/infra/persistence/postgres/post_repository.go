package postgres

import (
	"context"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// postRepository implements repository.PostRepository using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns the repository as the domain interface.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// DeleteByOwnerID removes all posts of the owner and returns the deleted row count.
func (repo *postRepository) DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete posts by owner")
	}

	return result.RowsAffected, nil
}

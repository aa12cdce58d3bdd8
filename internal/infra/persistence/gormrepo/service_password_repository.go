package gormrepo

import (
	"context"
	"time"

	"passmanager/internal/domain/entity"
	domainerrors "passmanager/internal/domain/errors"
	"passmanager/internal/domain/repository"
	"passmanager/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// servicePasswordRepository implements repository.ServicePasswordRepository using GORM.
type servicePasswordRepository struct {
	db *gorm.DB
}

// NewServicePasswordRepository is the constructor for servicePasswordRepository.
func NewServicePasswordRepository(db *gorm.DB) repository.ServicePasswordRepository {
	return &servicePasswordRepository{db: db}
}

// Create persists a new entry.
func (repo *servicePasswordRepository) Create(ctx context.Context, entry *entity.ServicePassword) error {
	entryM := fromServicePasswordDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrServicePasswordAlreadyExists.WrapMessage("service name already used by this user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service password")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindByUsername returns all entries owned by username.
func (repo *servicePasswordRepository) FindByUsername(ctx context.Context, username string) ([]*entity.ServicePassword, error) {
	var entryMs []*model.ServicePasswordModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Order("service_name").
		Find(&entryMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list service passwords")
	}

	entries := make([]*entity.ServicePassword, 0, len(entryMs))
	for _, entryM := range entryMs {
		entries = append(entries, toServicePasswordDomain(entryM))
	}

	return entries, nil
}

// FindByIDAndUsername retrieves an entry by ID scoped to its owner.
func (repo *servicePasswordRepository) FindByIDAndUsername(ctx context.Context, id uuid.UUID, username string) (*entity.ServicePassword, error) {
	var entryM model.ServicePasswordModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		First(&entryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServicePasswordNotFound
		}

		return nil, errors.Wrap(err, "failed to find service password by id")
	}

	return toServicePasswordDomain(&entryM), nil
}

// FindByUsernameAndServiceName retrieves the entry for one service.
func (repo *servicePasswordRepository) FindByUsernameAndServiceName(ctx context.Context, username, serviceName string) (*entity.ServicePassword, error) {
	var entryM model.ServicePasswordModel
	err := repo.db.WithContext(ctx).
		Where("username = ? AND service_name = ?", username, serviceName).
		First(&entryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServicePasswordNotFound
		}

		return nil, errors.Wrap(err, "failed to find service password by service name")
	}

	return toServicePasswordDomain(&entryM), nil
}

// Update overwrites service name and password. The owner never changes.
func (repo *servicePasswordRepository) Update(ctx context.Context, entry *entity.ServicePassword) error {
	entryM := fromServicePasswordDomain(entry)
	entryM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(entryM).
		Select("service_name", "password", "updated_at").
		Where("id = ? AND username = ?", entry.ID, entry.Username).
		Updates(entryM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrServicePasswordAlreadyExists.WrapMessage("service name already used by this user")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServicePasswordNotFound
	}

	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// DeleteByUsernameAndServiceName removes one entry by its composite key.
func (repo *servicePasswordRepository) DeleteByUsernameAndServiceName(ctx context.Context, username, serviceName string) error {
	result := repo.db.WithContext(ctx).
		Where("username = ? AND service_name = ?", username, serviceName).
		Delete(&model.ServicePasswordModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServicePasswordNotFound
	}

	return nil
}

// DeleteByUsername removes all entries of a user. Deleting zero rows is not an error.
func (repo *servicePasswordRepository) DeleteByUsername(ctx context.Context, username string) error {
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&model.ServicePasswordModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete service passwords of user")
	}

	return nil
}

// --- Mapper Functions ---

func toServicePasswordDomain(data *model.ServicePasswordModel) *entity.ServicePassword {
	if data == nil {
		return nil
	}

	return &entity.ServicePassword{
		ID:          data.ID,
		Username:    data.Username,
		ServiceName: data.ServiceName,
		Password:    data.Password,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromServicePasswordDomain(data *entity.ServicePassword) *model.ServicePasswordModel {
	if data == nil {
		return nil
	}

	return &model.ServicePasswordModel{
		ID:          data.ID,
		Username:    data.Username,
		ServiceName: data.ServiceName,
		Password:    data.Password,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

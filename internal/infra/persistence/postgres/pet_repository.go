package postgres

import (
	"context"

	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{
		db: db,
	}
}

func (repo *petRepository) CreatePet(ctx context.Context, pet *entity.Pet) error {
	if pet.ID == uuid.Nil {
		pet.ID = uuid.Must(uuid.NewV7())
	}
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create pet")
	}

	pet.CreatedAt = petM.CreatedAt
	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

func (repo *petRepository) FindPetByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&petM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	return toPetDomain(&petM), nil
}

func (repo *petRepository) FindPetsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Pet, error) {
	var petModels []*model.PetModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name").
		Find(&petModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pets by user")
	}

	pets := make([]*entity.Pet, 0, len(petModels))
	for _, petM := range petModels {
		pets = append(pets, toPetDomain(petM))
	}

	return pets, nil
}

// --- Mapper Functions ---

func toPetDomain(data *model.PetModel) *entity.Pet {
	if data == nil {
		return nil
	}

	return &entity.Pet{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPetDomain(data *entity.Pet) *model.PetModel {
	if data == nil {
		return nil
	}

	return &model.PetModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

package repository

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPetNotFound is returned when a pet does not exist.
var ErrPetNotFound = errors.New("pet not found")

// PetRepository persists pets.
type PetRepository interface {
	CreatePet(ctx context.Context, pet *entity.Pet) error
	FindPetByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
	FindPetsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Pet, error)
}

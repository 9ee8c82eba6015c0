package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "petfeeder/internal/delivery/context"
	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type petService struct {
	petRepo repository.PetRepository
	logger  *slog.Logger
	now     func() time.Time
}

// PetServiceParams holds dependencies for PetService, injected by Fx.
type PetServiceParams struct {
	fx.In

	PetRepo repository.PetRepository
	Logger  *slog.Logger
}

func NewPetService(params PetServiceParams) usecase.PetUsecase {
	return &petService{
		petRepo: params.PetRepo,
		logger:  params.Logger,
		now:     time.Now,
	}
}

func (srv *petService) Create(ctx context.Context, userID uuid.UUID, name string) (*entity.Pet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("pet name is required")
	}

	now := srv.now()
	pet := &entity.Pet{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.petRepo.CreatePet(ctx, pet); err != nil {
		return nil, toAppError(deliverycontext.GetLoggerOrDefault(ctx, srv.logger), err, "failed to create pet")
	}

	return pet, nil
}

func (srv *petService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Pet, error) {
	pets, err := srv.petRepo.FindPetsByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list pets")
	}

	return pets, nil
}

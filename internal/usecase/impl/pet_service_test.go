package impl

import (
	"context"
	"testing"
	"time"

	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	mockRepo "petfeeder/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPetService(t *testing.T) (*petService, *mockRepo.MockPetRepository) {
	petRepo := mockRepo.NewMockPetRepository(t)
	svc := NewPetService(PetServiceParams{PetRepo: petRepo, Logger: newDiscardLogger()}).(*petService)
	svc.now = func() time.Time { return fixedNow }

	return svc, petRepo
}

func TestPetService_Create(t *testing.T) {
	svc, petRepo := createTestPetService(t)
	userID := uuid.New()
	petRepo.EXPECT().CreatePet(mock.Anything, mock.MatchedBy(func(p *entity.Pet) bool {
		return p.Name == "Miso" && p.UserID == userID
	})).Return(nil)

	pet, err := svc.Create(context.Background(), userID, "  Miso ")

	require.NoError(t, err)
	assert.Equal(t, "Miso", pet.Name)
	assert.Equal(t, fixedNow, pet.CreatedAt)
	assert.NotEqual(t, uuid.Nil, pet.ID)
}

func TestPetService_Create_BlankName(t *testing.T) {
	svc, _ := createTestPetService(t)

	_, err := svc.Create(context.Background(), uuid.New(), "   ")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPetService_List_DatabaseError(t *testing.T) {
	svc, petRepo := createTestPetService(t)
	petRepo.EXPECT().FindPetsByUser(mock.Anything, mock.Anything).Return(nil, errors.New("conn reset"))

	_, err := svc.List(context.Background(), uuid.New())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}

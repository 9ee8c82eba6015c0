package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"petfeeder/internal/domain/constants"
	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	mockRepo "petfeeder/internal/mocks/repository"
	mockSvc "petfeeder/internal/mocks/service"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testIdentifier = "ESP32-ab12-deadbeef"
	testSecret     = "s3cr3t-s3cr3t-1"
)

type deviceServiceFixtures struct {
	service      usecase.DeviceUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	deviceRepo   *mockRepo.MockDeviceRepository
	ownerRepo    *mockRepo.MockDeviceOwnerRepository
	statusRepo   *mockRepo.MockDeviceStatusRepository
	timingRepo   *mockRepo.MockMotorTimingRepository
	trackingRepo *mockRepo.MockAlertTrackingRepository
	eventRepo    *mockRepo.MockEventRepository
	hasher       *mockSvc.MockSecretHasher
	keyGenerator *mockSvc.MockDeviceKeyGenerator
	tokenService *mockSvc.MockTokenService
	qrCode       *mockSvc.MockQRCodeService
}

func createTestDeviceService(t *testing.T, mode string) deviceServiceFixtures {
	fx := deviceServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		deviceRepo:   mockRepo.NewMockDeviceRepository(t),
		ownerRepo:    mockRepo.NewMockDeviceOwnerRepository(t),
		statusRepo:   mockRepo.NewMockDeviceStatusRepository(t),
		timingRepo:   mockRepo.NewMockMotorTimingRepository(t),
		trackingRepo: mockRepo.NewMockAlertTrackingRepository(t),
		eventRepo:    mockRepo.NewMockEventRepository(t),
		hasher:       mockSvc.NewMockSecretHasher(t),
		keyGenerator: mockSvc.NewMockDeviceKeyGenerator(t),
		tokenService: mockSvc.NewMockTokenService(t),
		qrCode:       mockSvc.NewMockQRCodeService(t),
	}

	svc := NewDeviceService(DeviceServiceParams{
		TxManager:     fx.txManager,
		DeviceRepo:    fx.deviceRepo,
		OwnerRepo:     fx.ownerRepo,
		StatusRepo:    fx.statusRepo,
		TimingRepo:    fx.timingRepo,
		Hasher:        fx.hasher,
		KeyGenerator:  fx.keyGenerator,
		TokenService:  fx.tokenService,
		QRCodeService: fx.qrCode,
		Config:        newTestConfig(mode),
		Logger:        newDiscardLogger(),
	})
	svc.(*deviceService).now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

func newTestDevice() *entity.Device {
	return &entity.Device{
		ID:         uuid.New(),
		Identifier: testIdentifier,
		SecretHash: "hashed-secret",
	}
}

func TestDeviceService_Verify_FirstContactRegisters(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(nil, repository.ErrDeviceNotFound)
	fx.hasher.EXPECT().Hash(testSecret).Return("hashed-secret", nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) {
			assert.Equal(t, testIdentifier, device.Identifier)
			assert.Equal(t, "hashed-secret", device.SecretHash)
			assert.False(t, device.Provisioned)
		}).
		Return(nil)

	result, err := fx.service.Verify(ctx, testIdentifier, testSecret)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, result.Status)
	assert.Equal(t, "Device ID ESP32-ab12-deadbeef added to database", result.Message)
	assert.Empty(t, result.APIKey)
}

func TestDeviceService_Verify_MalformedIdentifier(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, "ESP32-short").Return(nil, repository.ErrDeviceNotFound)

	result, err := fx.service.Verify(ctx, "ESP32-short", testSecret)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, result.Status)
	assert.Equal(t, "Invalid device identifier", result.Message)
}

func TestDeviceService_Verify_AllowlistRejectsUnknown(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeAllowlist)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(nil, repository.ErrDeviceNotFound)

	result, err := fx.service.Verify(ctx, testIdentifier, testSecret)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, result.Status)
	assert.Equal(t, "Invalid device identifier", result.Message)
}

func TestDeviceService_Verify_WrongSecret(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)
	ctx := context.Background()
	device := newTestDevice()

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(device, nil)
	fx.hasher.EXPECT().Check("wrong-secret-00", device.SecretHash).Return(false)

	result, err := fx.service.Verify(ctx, testIdentifier, "wrong-secret-00")

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, result.Status)
	assert.Equal(t, "Forbidden", result.Message)
}

func TestDeviceService_Verify_NotActivated(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)
	ctx := context.Background()
	device := newTestDevice()

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(device, nil)
	fx.hasher.EXPECT().Check(testSecret, device.SecretHash).Return(true)
	fx.ownerRepo.EXPECT().FindOwnerByDeviceID(ctx, device.ID).Return(nil, repository.ErrOwnerNotFound)

	result, err := fx.service.Verify(ctx, testIdentifier, testSecret)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, result.Status)
	assert.Equal(t, "Device not registered", result.Message)
}

func TestDeviceService_Verify_Activated(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)
	ctx := context.Background()
	device := newTestDevice()
	owner := newTestOwner()
	owner.DeviceID = device.ID

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(device, nil)
	fx.hasher.EXPECT().Check(testSecret, device.SecretHash).Return(true)
	fx.ownerRepo.EXPECT().FindOwnerByDeviceID(ctx, device.ID).Return(owner, nil)
	fx.tokenService.EXPECT().GenerateDeviceToken(owner.UserID, owner.ID).Return("api-key", nil)
	fx.statusRepo.EXPECT().TouchBoot(ctx, device.ID, fixedNow).Return(nil)

	result, err := fx.service.Verify(ctx, testIdentifier, testSecret)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "api-key", result.APIKey)
	assert.Equal(t, owner.DeviceKey, result.DeviceKey)
}

func TestDeviceService_Verify_ActivatedWithoutStatus(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)
	ctx := context.Background()
	device := newTestDevice()
	owner := newTestOwner()
	owner.DeviceID = device.ID

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(device, nil)
	fx.hasher.EXPECT().Check(testSecret, device.SecretHash).Return(true)
	fx.ownerRepo.EXPECT().FindOwnerByDeviceID(ctx, device.ID).Return(owner, nil)
	fx.tokenService.EXPECT().GenerateDeviceToken(owner.UserID, owner.ID).Return("api-key", nil)
	fx.statusRepo.EXPECT().TouchBoot(ctx, device.ID, fixedNow).Return(repository.ErrStatusNotFound)
	fx.statusRepo.EXPECT().
		SaveStatus(ctx, mock.MatchedBy(func(s *entity.DeviceStatus) bool {
			return s.DeviceID == device.ID && s.LastBoot.Equal(fixedNow) && s.LastPing.Equal(fixedNow)
		})).
		Return(nil)

	result, err := fx.service.Verify(ctx, testIdentifier, testSecret)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)
}

func TestDeviceService_Verify_ConcurrentFirstContact(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)
	ctx := context.Background()
	device := newTestDevice()

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(nil, repository.ErrDeviceNotFound).Once()
	fx.hasher.EXPECT().Hash(testSecret).Return("hashed-secret", nil)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).Return(repository.ErrDuplicateDevice)
	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(device, nil).Once()
	fx.hasher.EXPECT().Check(testSecret, device.SecretHash).Return(true)
	fx.ownerRepo.EXPECT().FindOwnerByDeviceID(ctx, device.ID).Return(nil, repository.ErrOwnerNotFound)

	result, err := fx.service.Verify(ctx, testIdentifier, testSecret)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, result.Status)
	assert.Equal(t, "Device not registered", result.Message)
}

func TestDeviceService_Activate_Success(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)
	ctx := context.Background()
	device := newTestDevice()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(device, nil)
	fx.hasher.EXPECT().Check(testSecret, device.SecretHash).Return(true)
	fx.ownerRepo.EXPECT().FindOwnerByDeviceID(ctx, device.ID).Return(nil, repository.ErrOwnerNotFound)
	fx.keyGenerator.EXPECT().Generate(mock.AnythingOfType("uuid.UUID")).Return("derived-key")

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewDeviceOwnerRepository().Return(fx.ownerRepo)
	fx.factory.EXPECT().NewAlertTrackingRepository().Return(fx.trackingRepo)
	fx.factory.EXPECT().NewEventRepository().Return(fx.eventRepo)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)

	fx.ownerRepo.EXPECT().CreateOwner(ctx, mock.AnythingOfType("*entity.DeviceOwner")).Return(nil)
	fx.trackingRepo.EXPECT().LockTracking(ctx, mock.AnythingOfType("uuid.UUID")).Return(&entity.AlertTracking{}, nil)
	fx.eventRepo.EXPECT().
		GetOrCreatePending(ctx, mock.MatchedBy(func(e *entity.EventQueueEntry) bool {
			return e.Code == entity.EventSettingsSync
		})).
		RunAndReturn(func(_ context.Context, e *entity.EventQueueEntry) (*entity.EventQueueEntry, bool, error) {
			return e, true, nil
		})
	fx.statusRepo.EXPECT().SetHasEvent(ctx, device.ID, true).Return(repository.ErrStatusNotFound)
	fx.statusRepo.EXPECT().
		SaveStatus(ctx, mock.MatchedBy(func(s *entity.DeviceStatus) bool {
			return s.DeviceID == device.ID && s.HasEvent
		})).
		Return(nil)

	owner, err := fx.service.Activate(ctx, userID, &usecase.ActivateInput{
		Identifier:     testIdentifier,
		ActivationCode: testSecret,
		Name:           "  ",
		ManualButton:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, userID, owner.UserID)
	assert.Equal(t, device.ID, owner.DeviceID)
	assert.Equal(t, testIdentifier, owner.Name)
	assert.Equal(t, "derived-key", owner.DeviceKey)
	assert.True(t, owner.ManualButton)
}

func TestDeviceService_Activate_BadCode(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)
	ctx := context.Background()
	device := newTestDevice()

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(device, nil)
	fx.hasher.EXPECT().Check("bad", device.SecretHash).Return(false)

	_, err := fx.service.Activate(ctx, uuid.New(), &usecase.ActivateInput{Identifier: testIdentifier, ActivationCode: "bad"})

	assert.ErrorIs(t, err, domainerrors.ErrActivationFailed)
}

func TestDeviceService_Activate_UnknownDevice(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(nil, repository.ErrDeviceNotFound)

	_, err := fx.service.Activate(ctx, uuid.New(), &usecase.ActivateInput{Identifier: testIdentifier, ActivationCode: testSecret})

	assert.ErrorIs(t, err, domainerrors.ErrActivationFailed)
}

func TestDeviceService_Activate_AlreadyOwned(t *testing.T) {
	tests := []struct {
		name    string
		sameUser bool
		want    error
	}{
		{name: "by caller", sameUser: true, want: domainerrors.ErrDeviceOwnedByYou},
		{name: "by someone else", sameUser: false, want: domainerrors.ErrDeviceOwnedByOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t, constants.RegistrationModeOpen)
			ctx := context.Background()
			device := newTestDevice()
			userID := uuid.New()
			existing := newTestOwner()
			if tt.sameUser {
				existing.UserID = userID
			}

			fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(device, nil)
			fx.hasher.EXPECT().Check(testSecret, device.SecretHash).Return(true)
			fx.ownerRepo.EXPECT().FindOwnerByDeviceID(ctx, device.ID).Return(existing, nil)

			_, err := fx.service.Activate(ctx, userID, &usecase.ActivateInput{Identifier: testIdentifier, ActivationCode: testSecret})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDeviceService_Activate_LostRace(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)
	ctx := context.Background()
	device := newTestDevice()

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(device, nil)
	fx.hasher.EXPECT().Check(testSecret, device.SecretHash).Return(true)
	fx.ownerRepo.EXPECT().FindOwnerByDeviceID(ctx, device.ID).Return(nil, repository.ErrOwnerNotFound)
	fx.keyGenerator.EXPECT().Generate(mock.AnythingOfType("uuid.UUID")).Return("derived-key")

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewDeviceOwnerRepository().Return(fx.ownerRepo)
	fx.ownerRepo.EXPECT().CreateOwner(ctx, mock.AnythingOfType("*entity.DeviceOwner")).Return(repository.ErrDuplicateOwner)

	_, err := fx.service.Activate(ctx, uuid.New(), &usecase.ActivateInput{Identifier: testIdentifier, ActivationCode: testSecret})

	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnedByOther)
}

func TestDeviceService_Activate_UnknownPortion(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)
	ctx := context.Background()
	device := newTestDevice()
	timingID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByIdentifier(ctx, testIdentifier).Return(device, nil)
	fx.hasher.EXPECT().Check(testSecret, device.SecretHash).Return(true)
	fx.ownerRepo.EXPECT().FindOwnerByDeviceID(ctx, device.ID).Return(nil, repository.ErrOwnerNotFound)
	fx.timingRepo.EXPECT().FindMotorTimingByID(ctx, timingID).Return(nil, repository.ErrMotorTimingNotFound)

	_, err := fx.service.Activate(ctx, uuid.New(), &usecase.ActivateInput{
		Identifier:     testIdentifier,
		ActivationCode: testSecret,
		MotorTimingID:  &timingID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPortionNotFound)
}

func TestDeviceService_Provision(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeAllowlist)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(testSecret).Return("hashed-secret", nil)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)

	device, err := fx.service.Provision(ctx, testIdentifier, testSecret)

	require.NoError(t, err)
	assert.True(t, device.Provisioned)
	assert.Equal(t, testIdentifier, device.Identifier)
	assert.Equal(t, fixedNow, device.CreatedAt)
}

func TestDeviceService_Provision_Errors(t *testing.T) {
	t.Run("invalid identifier", func(t *testing.T) {
		fx := createTestDeviceService(t, constants.RegistrationModeAllowlist)

		_, err := fx.service.Provision(context.Background(), "ESP32-AB12-DEADBEEF", testSecret)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidDeviceIdentifier)
	})

	t.Run("duplicate", func(t *testing.T) {
		fx := createTestDeviceService(t, constants.RegistrationModeAllowlist)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash(testSecret).Return("hashed-secret", nil)
		fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).Return(repository.ErrDuplicateDevice)

		_, err := fx.service.Provision(ctx, testIdentifier, testSecret)

		assert.ErrorIs(t, err, domainerrors.ErrDeviceAlreadyProvisioned)
	})
}

func TestDeviceService_ActivationQRCode(t *testing.T) {
	fx := createTestDeviceService(t, constants.RegistrationModeOpen)

	fx.qrCode.EXPECT().GenerateActivationQR(testIdentifier, testSecret).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.ActivationQRCode(testIdentifier, testSecret)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"petfeeder/config"
	deliverycontext "petfeeder/internal/delivery/context"
	"petfeeder/internal/domain/constants"
	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/domain/service"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Verification messages sent back to devices.
const (
	msgForbidden               = "Forbidden"
	msgDeviceNotRegistered     = "Device not registered"
	msgInvalidDeviceIdentifier = "Invalid device identifier"
	msgDeviceAdded             = "Device ID %s added to database"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager        repository.TransactionManager
	deviceRepo       repository.DeviceRepository
	ownerRepo        repository.DeviceOwnerRepository
	statusRepo       repository.DeviceStatusRepository
	timingRepo       repository.MotorTimingRepository
	hasher           service.SecretHasher
	keyGenerator     service.DeviceKeyGenerator
	tokenService     service.TokenService
	qrCodeService    service.QRCodeService
	registrationMode string
	logger           *slog.Logger
	now              func() time.Time
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	DeviceRepo    repository.DeviceRepository
	OwnerRepo     repository.DeviceOwnerRepository
	StatusRepo    repository.DeviceStatusRepository
	TimingRepo    repository.MotorTimingRepository
	Hasher        service.SecretHasher
	KeyGenerator  service.DeviceKeyGenerator
	TokenService  service.TokenService
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	mode := constants.RegistrationModeOpen
	if params.Config != nil && params.Config.Feeder != nil && params.Config.Feeder.RegistrationMode != "" {
		mode = params.Config.Feeder.RegistrationMode
	}

	return &deviceService{
		txManager:        params.TxManager,
		deviceRepo:       params.DeviceRepo,
		ownerRepo:        params.OwnerRepo,
		statusRepo:       params.StatusRepo,
		timingRepo:       params.TimingRepo,
		hasher:           params.Hasher,
		keyGenerator:     params.KeyGenerator,
		tokenService:     params.TokenService,
		qrCodeService:    params.QRCodeService,
		registrationMode: mode,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Verify looks the identifier up first so a known device with a wrong secret
// is refused before any format check.
func (srv *deviceService) Verify(ctx context.Context, identifier, secret string) (*usecase.VerificationResult, error) {
	device, err := srv.deviceRepo.FindDeviceByIdentifier(ctx, identifier)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return srv.registerOnFirstContact(ctx, identifier, secret)
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device")
	}

	if !srv.hasher.Check(secret, device.SecretHash) {
		srv.log(ctx).Warn("Device secret mismatch", slog.String("identifier", identifier))

		return &usecase.VerificationResult{Status: http.StatusForbidden, Message: msgForbidden}, nil
	}

	owner, err := srv.ownerRepo.FindOwnerByDeviceID(ctx, device.ID)
	if errors.Is(err, repository.ErrOwnerNotFound) {
		return &usecase.VerificationResult{Status: http.StatusNotFound, Message: msgDeviceNotRegistered}, nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device owner")
	}

	apiKey, err := srv.tokenService.GenerateDeviceToken(owner.UserID, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue device token")
	}

	if err := srv.rotateBoot(ctx, device.ID); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to rotate last boot")
	}

	srv.log(ctx).Info("Device verified", slog.String("identifier", identifier), slog.Any("ownerID", owner.ID))

	return &usecase.VerificationResult{
		Status:    http.StatusOK,
		APIKey:    apiKey,
		DeviceKey: owner.DeviceKey,
	}, nil
}

func (srv *deviceService) registerOnFirstContact(ctx context.Context, identifier, secret string) (*usecase.VerificationResult, error) {
	invalid := &usecase.VerificationResult{Status: http.StatusNotFound, Message: msgInvalidDeviceIdentifier}
	if !entity.ValidDeviceCredentials(identifier, secret) {
		return invalid, nil
	}
	if srv.registrationMode != constants.RegistrationModeOpen {
		srv.log(ctx).Warn("Rejected unprovisioned device", slog.String("identifier", identifier))

		return invalid, nil
	}

	device, err := srv.newDevice(identifier, secret, false)
	if err != nil {
		return nil, err
	}

	err = srv.deviceRepo.CreateDevice(ctx, device)
	if errors.Is(err, repository.ErrDuplicateDevice) {
		// Another request registered it first; answer as for a known device.
		return srv.Verify(ctx, identifier, secret)
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	srv.log(ctx).Info("Device self-registered", slog.String("identifier", identifier))

	return &usecase.VerificationResult{
		Status:  http.StatusCreated,
		Message: fmt.Sprintf(msgDeviceAdded, identifier),
	}, nil
}

func (srv *deviceService) newDevice(identifier, secret string, provisioned bool) (*entity.Device, error) {
	hash, err := srv.hasher.Hash(secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash device secret")
	}
	now := srv.now()

	return &entity.Device{
		ID:          uuid.Must(uuid.NewV7()),
		Identifier:  identifier,
		SecretHash:  hash,
		Provisioned: provisioned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (srv *deviceService) rotateBoot(ctx context.Context, deviceID uuid.UUID) error {
	now := srv.now()

	err := srv.statusRepo.TouchBoot(ctx, deviceID, now)
	if errors.Is(err, repository.ErrStatusNotFound) {
		return srv.statusRepo.SaveStatus(ctx, entity.NewDeviceStatus(deviceID, now))
	}

	return err
}

// Activate binds the device to userID. The binding, its alert tracking row and
// the initial settings sync are written in one transaction.
func (srv *deviceService) Activate(ctx context.Context, userID uuid.UUID, input *usecase.ActivateInput) (*entity.DeviceOwner, error) {
	device, err := srv.deviceRepo.FindDeviceByIdentifier(ctx, input.Identifier)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrActivationFailed
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device")
	}
	if !srv.hasher.Check(input.ActivationCode, device.SecretHash) {
		srv.log(ctx).Warn("Activation code mismatch", slog.String("identifier", input.Identifier), slog.Any("userID", userID))

		return nil, domainerrors.ErrActivationFailed
	}

	existing, err := srv.ownerRepo.FindOwnerByDeviceID(ctx, device.ID)
	switch {
	case err == nil && existing.UserID == userID:
		return nil, domainerrors.ErrDeviceOwnedByYou
	case err == nil:
		return nil, domainerrors.ErrDeviceOwnedByOther
	case !errors.Is(err, repository.ErrOwnerNotFound):
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device owner")
	}

	if input.MotorTimingID != nil {
		if _, err := srv.timingRepo.FindMotorTimingByID(ctx, *input.MotorTimingID); err != nil {
			if errors.Is(err, repository.ErrMotorTimingNotFound) {
				return nil, domainerrors.ErrPortionNotFound
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find motor timing")
		}
	}

	now := srv.now()
	owner := &entity.DeviceOwner{
		ID:            uuid.Must(uuid.NewV7()),
		DeviceID:      device.ID,
		UserID:        userID,
		Name:          strings.TrimSpace(input.Name),
		MotorTimingID: input.MotorTimingID,
		ManualButton:  input.ManualButton,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if owner.Name == "" {
		owner.Name = device.Identifier
	}
	owner.DeviceKey = srv.keyGenerator.Generate(owner.ID)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewDeviceOwnerRepository().CreateOwner(ctx, owner); err != nil {
			if errors.Is(err, repository.ErrDuplicateOwner) {
				return domainerrors.ErrDeviceOwnedByOther
			}

			return errors.Wrap(err, "failed to create device owner")
		}

		if _, err := repoFactory.NewAlertTrackingRepository().LockTracking(ctx, owner.ID); err != nil {
			return errors.Wrap(err, "failed to create alert tracking")
		}

		_, err := enqueueEvent(ctx, repoFactory, owner, entity.EventSettingsSync, nil, now)

		return err
	})
	if err != nil {
		return nil, toAppError(srv.log(ctx), err, "failed to activate device")
	}

	srv.log(ctx).Info("Device activated", slog.String("identifier", input.Identifier), slog.Any("ownerID", owner.ID), slog.Any("userID", userID))

	return owner, nil
}

// Provision stores factory credentials for allowlist registration.
func (srv *deviceService) Provision(ctx context.Context, identifier, secret string) (*entity.Device, error) {
	if !entity.ValidDeviceCredentials(identifier, secret) {
		return nil, domainerrors.ErrInvalidDeviceIdentifier
	}

	device, err := srv.newDevice(identifier, secret, true)
	if err != nil {
		return nil, err
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrDeviceAlreadyProvisioned
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to provision device")
	}

	srv.log(ctx).Info("Device provisioned", slog.String("identifier", identifier))

	return device, nil
}

func (srv *deviceService) ActivationQRCode(identifier, secret string) ([]byte, error) {
	if !entity.ValidDeviceCredentials(identifier, secret) {
		return nil, domainerrors.ErrInvalidDeviceIdentifier
	}

	png, err := srv.qrCodeService.GenerateActivationQR(identifier, secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render activation QR code")
	}

	return png, nil
}

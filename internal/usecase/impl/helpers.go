// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// enqueueEvent queues code for owner inside the caller's transaction and
// raises the device's has_event flag. A pending entry with the same code is
// reused instead of queuing a duplicate; when the request carries a payload
// the reused entry takes it, so the device acts on the latest request.
func enqueueEvent(
	ctx context.Context,
	repos repository.RepositoryFactory,
	owner *entity.DeviceOwner,
	code entity.EventCode,
	payload any,
	now time.Time,
) (*entity.EventQueueEntry, error) {
	entry := &entity.EventQueueEntry{
		DeviceOwnerID: owner.ID,
		Code:          code,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode event payload")
		}
		entry.Payload = raw
	}

	eventRepo := repos.NewEventRepository()
	pending, created, err := eventRepo.GetOrCreatePending(ctx, entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enqueue event")
	}
	if !created && entry.Payload != nil {
		if err := eventRepo.RefreshPayload(ctx, pending.ID, entry.Payload, now); err != nil {
			return nil, err
		}
		pending.Payload = entry.Payload
		pending.UpdatedAt = now
	}

	if err := markHasEvent(ctx, repos.NewDeviceStatusRepository(), owner.DeviceID, true, now); err != nil {
		return nil, err
	}

	return pending, nil
}

// markHasEvent sets the flag, creating the status row for devices that never
// sent a heartbeat.
func markHasEvent(ctx context.Context, statusRepo repository.DeviceStatusRepository, deviceID uuid.UUID, hasEvent bool, now time.Time) error {
	err := statusRepo.SetHasEvent(ctx, deviceID, hasEvent)
	if errors.Is(err, repository.ErrStatusNotFound) {
		status := entity.NewDeviceStatus(deviceID, now)
		status.HasEvent = hasEvent

		return errors.Wrap(statusRepo.SaveStatus(ctx, status), "failed to create device status")
	}

	return errors.Wrap(err, "failed to update has_event")
}

// findUserOwner loads a binding and hides bindings of other users behind not found.
func findUserOwner(ctx context.Context, ownerRepo repository.DeviceOwnerRepository, userID, ownerID uuid.UUID) (*entity.DeviceOwner, error) {
	owner, err := ownerRepo.FindOwnerByID(ctx, ownerID)
	if errors.Is(err, repository.ErrOwnerNotFound) {
		return nil, domainerrors.ErrFeederNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find feeder")
	}
	if owner.UserID != userID {
		return nil, domainerrors.ErrFeederNotFound
	}

	return owner, nil
}

// publishQueued wakes the notifier worker. Delivery still happens through the
// poll loop when publishing fails, so errors are only logged.
func publishQueued(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, requestID string, ids []uuid.UUID) {
	if publisher == nil || len(ids) == 0 {
		return
	}

	messageIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		messageIDs = append(messageIDs, id.String())
	}

	if err := publisher.PublishMessagesQueued(ctx, &service.MessagesQueuedEvent{
		RequestID:  requestID,
		MessageIDs: messageIDs,
	}); err != nil {
		logger.Warn("Failed to publish queued messages", slog.Int("count", len(ids)), slog.Any("error", err))
	}
}

// isAppError reports whether err already carries a user-facing error.
func isAppError(err error) bool {
	var appErr domainerrors.AppError

	return errors.As(err, &appErr)
}

// toAppError passes AppErrors through and logs anything else as a database failure.
func toAppError(logger *slog.Logger, err error, details string) error {
	if isAppError(err) {
		return err
	}
	logger.Error(details, slog.Any("error", err))

	return domainerrors.NewDatabaseExecuteError(err, details)
}

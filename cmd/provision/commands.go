package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/infra/persistence/postgres"
	"petfeeder/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func runAdd(ctx context.Context, identifier, secret string) error {
	return withApp(ctx, func(ctx context.Context, d *deps) error {
		if err := postgres.AutoMigrate(d.db.WithContext(ctx)); err != nil {
			return err
		}

		device, err := d.deviceUC.Provision(ctx, identifier, secret)
		if err != nil {
			return err
		}

		fmt.Printf("Provisioned %s (%s)\n", device.Identifier, device.ID)

		return nil
	})
}

func runImport(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open import file")
	}
	defer file.Close()

	rows, err := parseDeviceCSV(file)
	if err != nil {
		return err
	}

	return withApp(ctx, func(ctx context.Context, d *deps) error {
		if err := postgres.AutoMigrate(d.db.WithContext(ctx)); err != nil {
			return err
		}

		var added, skipped int
		for _, row := range rows {
			_, err := d.deviceUC.Provision(ctx, row.Identifier, row.Secret)
			switch {
			case err == nil:
				added++
			case errors.Is(err, domainerrors.ErrDeviceAlreadyProvisioned):
				skipped++
			default:
				return errors.Wrapf(err, "line %d", row.Line)
			}
		}

		d.logger.Info("Import finished",
			slog.Int("added", added),
			slog.Int("skipped", skipped),
		)
		fmt.Printf("Imported %d devices, %d already known\n", added, skipped)

		return nil
	})
}

func runQR(ctx context.Context, identifier, secret, output string) error {
	return withApp(ctx, func(_ context.Context, d *deps) error {
		png, err := d.deviceUC.ActivationQRCode(identifier, secret)
		if err != nil {
			return err
		}

		if err := os.WriteFile(output, png, 0o644); err != nil {
			return errors.Wrap(err, "failed to write QR code")
		}

		fmt.Printf("Wrote %s\n", output)

		return nil
	})
}

func runFirmware(ctx context.Context, flags *firmwareFlags) error {
	ownerID, err := uuid.Parse(*flags.owner)
	if err != nil {
		return errors.Wrap(err, "invalid --feeder id")
	}

	upgrade := &entity.FirmwareUpgradePayload{
		Version: *flags.version,
		URL:     *flags.url,
		SHA256:  *flags.sha256,
		Size:    *flags.size,
	}

	if *flags.file != "" {
		digest, err := util.DigestFile(*flags.file)
		if err != nil {
			return err
		}
		if upgrade.SHA256 != "" && upgrade.SHA256 != digest.SHA256 {
			return errors.Errorf("--sha256 does not match %s", *flags.file)
		}
		upgrade.SHA256 = digest.SHA256
		upgrade.Size = digest.Size
	}

	return withApp(ctx, func(ctx context.Context, d *deps) error {
		entry, err := d.feederUC.RequestFirmwareUpgrade(ctx, ownerID, upgrade)
		if err != nil {
			return err
		}

		fmt.Printf("Queued firmware %s (%s) as event %s\n", upgrade.Version, util.FormatBytes(upgrade.Size), entry.ID)

		return nil
	})
}

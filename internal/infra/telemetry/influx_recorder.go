// Package telemetry keeps heartbeat history in InfluxDB.
package telemetry

import (
	"context"
	"log/slog"
	"time"

	"petfeeder/config"
	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/lifecycle"
	"petfeeder/internal/domain/service"
	"petfeeder/internal/errors"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"go.uber.org/fx"
)

const measurement = "feeder_telemetry"

type influxRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
	logger   *slog.Logger
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, *entity.DeviceOwner, *entity.DeviceStatus) {}

func (noopRecorder) Close() {}

// NewNoopRecorder returns a recorder that drops every point.
func NewNoopRecorder() service.TelemetryRecorder {
	return noopRecorder{}
}

// RecorderParams holds dependencies for the TelemetryRecorder, injected by Fx
type RecorderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRecorder connects to InfluxDB when enabled. Points are batched by the
// client's non-blocking write API; write errors are only logged.
func NewRecorder(params RecorderParams) (service.TelemetryRecorder, error) {
	cfg := params.Config.InfluxDB
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("InfluxDB telemetry disabled")

		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	writeAPI := client.WriteAPI(cfg.Org, cfg.Bucket)

	r := &influxRecorder{
		client:   client,
		writeAPI: writeAPI,
		logger:   params.Logger,
	}
	go r.drainErrors(writeAPI.Errors())

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			healthy, err := client.Ping(pingCtx)
			if err != nil || !healthy {
				// Telemetry history is best effort; the API still starts.
				params.Logger.Warn("InfluxDB not reachable", slog.Any("error", err), slog.String("url", cfg.URL))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			r.Close()

			return nil
		},
	})

	return r, nil
}

func (r *influxRecorder) Record(_ context.Context, owner *entity.DeviceOwner, status *entity.DeviceStatus) {
	r.writeAPI.WritePoint(telemetryPoint(owner, status))
}

func (r *influxRecorder) Close() {
	r.writeAPI.Flush()
	r.client.Close()
}

func (r *influxRecorder) drainErrors(errs <-chan error) {
	for err := range errs {
		r.logger.Warn("InfluxDB write failed", slog.Any("error", errors.WithStack(err)))
	}
}

func telemetryPoint(owner *entity.DeviceOwner, status *entity.DeviceStatus) *write.Point {
	at := status.LastPing
	if at.IsZero() {
		at = time.Now()
	}

	return write.NewPoint(
		measurement,
		map[string]string{
			"device_owner_id": owner.ID.String(),
			"user_id":         owner.UserID.String(),
			"firmware":        status.FirmwareVersion,
		},
		map[string]any{
			"battery_voltage": status.BatteryVoltage,
			"battery_soc":     status.BatterySOC,
			"battery_crate":   status.BatteryCRate,
			"runtime_seconds": status.RuntimeSeconds(),
			"hopper_level":    status.HopperLevel,
			"is_hopper_low":   status.IsHopperLow,
			"on_power":        status.OnPower,
		},
		at,
	)
}

// Package worker serves the notifier's push endpoint.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"petfeeder/config"
	"petfeeder/internal/delivery"
	"petfeeder/internal/delivery/middleware"
	"petfeeder/internal/delivery/worker/handler"
	"petfeeder/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Pub/Sub push envelopes for a wakeup are a few hundred bytes.
const pushBodyLimit = "64KB"

type notifierServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &notifierServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger: params.Logger,
		echo:   NewEcho(params.Cfg, params.Logger, params.PushHandler),
	}
	params.Lc.Append(fx.StopHook(srv.shutdown))

	return srv, nil
}

// NewEcho exposes GET /health and POST /push.
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", pushHandler.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

func (s *notifierServer) Serve(context.Context) error {
	s.logger.Info("notifier listening", slog.String("host_port", s.addr))

	err := s.echo.Start(s.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *notifierServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("notifier shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}

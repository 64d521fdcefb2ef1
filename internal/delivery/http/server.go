package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"cabinet/config"
	"cabinet/internal/delivery"
	deliverymiddleware "cabinet/internal/delivery/middleware"
	httpmiddleware "cabinet/internal/delivery/http/middleware"
	"cabinet/internal/delivery/http/router"
	"cabinet/internal/delivery/http/router/handler"
	"cabinet/internal/delivery/http/validator"
	"cabinet/internal/domain/lifecycle"
	"cabinet/internal/domain/repository"
	"cabinet/internal/infra/auth"
	"cabinet/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
	RequestID    *deliverymiddleware.RequestIDMiddleware
	AccessLog    *deliverymiddleware.LoggerMiddleware
	Errors       *httpmiddleware.ErrorMiddleware
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the dev account service and registers its shutdown hook.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: NewEcho(params),
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// NewEcho assembles the echo instance with middleware and routes.
func NewEcho(params HTTPParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.Errors.HandleHTTPError
	echoServer.Use(middleware.Recover())
	echoServer.Use(params.RequestID.Process)
	echoServer.Use(params.AccessLog.Handle)

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	return echoServer
}

// Standalone wires the service without fx around the given account store.
func Standalone(cfg *config.Config, logger *slog.Logger, accounts repository.AccountRepository) (*echo.Echo, error) {
	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return nil, err
	}

	accountSvc := impl.NewAccountService(accounts, tokenSvc, cfg, logger)

	return NewEcho(HTTPParams{
		Config: cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AccountHandler: handler.NewAccountHandler(accountSvc, logger),
			AuthMiddleware: httpmiddleware.NewAuthMiddleware(tokenSvc),
		},
		RequestID: deliverymiddleware.NewRequestIDMiddleware(logger),
		AccessLog: deliverymiddleware.NewLoggerMiddleware(logger, cfg),
		Errors:    httpmiddleware.NewErrorMiddleware(logger),
	}), nil
}

func (s *httpServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.DevServer.Port))
	s.logger.Info("Starting dev account service", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down dev account service")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

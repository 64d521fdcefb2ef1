package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"cabinet/config"
	"cabinet/internal/delivery/terminal"
	"cabinet/internal/event"
	"cabinet/internal/infra/accountapi"
	"cabinet/internal/infra/auth"
	logs "cabinet/internal/infra/log"
	"cabinet/internal/infra/persistence/sqlite"
	"cabinet/internal/infra/qrcode"
	"cabinet/internal/usecase"
	"cabinet/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type runTerminalParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config     *config.Config
	Logger     *slog.Logger
	Session    usecase.SessionUsecase
	Controller *terminal.ProfileController
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)

			return fxLogger
		}),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			runTerminal,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		sqlite.New,
		event.NewBus,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			accountapi.New,
			auth.NewTokenInspector,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewSessionClient,
			usecase.NewUsernameValidator,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			func() io.Writer { return os.Stdout },
			terminal.NewProfileController,
		),
	)
}

// runTerminal bootstraps the session and reads stdin until the user quits or input ends.
// Stopping the app sends the heartbeat before the session detaches.
func runTerminal(params runTerminalParams) {
	runCtx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := params.Controller.Enable(); err != nil {
				return err
			}
			if err := params.Session.Start(); err != nil {
				return err
			}

			go func() {
				if err := params.Session.Bootstrap(runCtx); err != nil {
					params.Logger.Error("Session bootstrap failed", slog.Any("error", err))
				}

				err := params.Controller.Run(runCtx, os.Stdin, terminal.IsInteractive(os.Stdin))
				if err != nil {
					params.Logger.Error("Reading input failed", slog.Any("error", err))
				}
				if runCtx.Err() == nil {
					_ = params.Shutdown()
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			heartbeatCtx, cancelHeartbeat := context.WithTimeout(ctx, params.Config.Heartbeat.Timeout)
			defer cancelHeartbeat()

			params.Session.NotifyShutdown(heartbeatCtx)
			cancel()
			params.Session.Stop()
			params.Controller.Disable()

			return nil
		},
	})
}

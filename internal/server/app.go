// Package server initializes and runs the account server: storage,
// migrations, optional account seeding, the welcome-mail worker, and the
// HTTP endpoint, with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/accountd/internal/logging"
	"github.com/dmitrijs2005/accountd/internal/server/accounts"
	"github.com/dmitrijs2005/accountd/internal/server/config"
	"github.com/dmitrijs2005/accountd/internal/server/httpapi"
	"github.com/dmitrijs2005/accountd/internal/server/mailer"
	"github.com/dmitrijs2005/accountd/internal/server/notify"
	"github.com/dmitrijs2005/accountd/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/accountd/internal/server/seed"
	"github.com/dmitrijs2005/accountd/internal/server/token"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    repomanager.RepositoryManager
	notifier *notify.Notifier
	httpSrv  *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	rm, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	issuer := token.NewIssuer([]byte(cfg.SecretKey), cfg.TokenValidityDuration)

	var m notify.Mailer
	if cfg.SMTPHost != "" {
		smtp, err := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
		if err != nil {
			return nil, fmt.Errorf("mailer init error: %w", err)
		}
		m = smtp
	} else {
		m = mailer.NewLog(logger)
	}
	notifier := notify.NewNotifier(m, logger)

	svc := accounts.NewService(rm.Accounts(), issuer, cfg.BcryptCost, notifier)
	httpSrv := httpapi.NewServer(cfg.EndpointAddrHTTP, svc, issuer, cfg.CORSAllowedOrigins, logger)

	return &App{
		config:   cfg,
		logger:   logger,
		repos:    rm,
		notifier: notifier,
		httpSrv:  httpSrv,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app")

	app.initSignalHandler(cancelFunc)

	if err := app.repos.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if app.config.SeedPath != "" {
		if err := seed.Apply(ctx, app.repos.Accounts(), app.config.SeedPath, app.config.BcryptCost, app.logger); err != nil {
			return fmt.Errorf("seed error: %w", err)
		}
	}

	app.notifier.Start(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpSrv.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
	app.notifier.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	app.logger.Info(ctx, "app stopped")
	return nil
}

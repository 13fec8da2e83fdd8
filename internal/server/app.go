// Package server initializes and runs the main application server. It wires
// the user store, credential and token components together, handles graceful
// shutdown, and starts the HTTP endpoint.
package server

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/afero"

	"github.com/avinash6982/TripMakerWeb-BE/internal/common"
	"github.com/avinash6982/TripMakerWeb-BE/internal/logging"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/accounts"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/auth"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/config"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/rest"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/store"
)

var errSecretRequired = errors.New("JWT secret is required in production")

type App struct {
	config         *config.Config
	logger         logging.Logger
	accountService *accounts.Service
	issuer         *auth.Issuer
}

func NewApp(cfg *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	secret, err := provisionSecret(cfg, logger)
	if err != nil {
		return nil, err
	}

	st := store.New(afero.NewOsFs(), cfg.StorePath, cfg.ScratchPath, logger)
	issuer := auth.NewIssuer(secret, cfg.TokenValidityDuration)
	svc := accounts.NewService(st, issuer)

	return &App{config: cfg, logger: logger, accountService: svc, issuer: issuer}, nil
}

// provisionSecret returns the configured signing secret. In development an
// absent secret is replaced with a random process-lifetime one, which makes
// tokens unverifiable after a restart; in production it is a fatal startup
// condition.
func provisionSecret(cfg *config.Config, logger logging.Logger) ([]byte, error) {
	if cfg.SecretKey != "" {
		return []byte(cfg.SecretKey), nil
	}
	if cfg.IsProduction() {
		return nil, errSecretRequired
	}
	logger.Warn(context.Background(),
		"no JWT secret configured, using an ephemeral one; tokens will not survive a restart")
	return common.GenerateRandByteArray(32), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(app.config.EndpointAddr, app.logger, app.accountService, app.issuer)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}

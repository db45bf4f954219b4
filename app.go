package main

import (
	"fmt"
	"io"

	"rental/internal/config"
	"rental/internal/console"
	"rental/internal/logger"
	"rental/internal/repositories"
	"rental/internal/services"
	"rental/internal/validators"
	"rental/pkg/rabbitmq"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// App wires the vehicle catalog together.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Repo    repositories.VehicleRepository
	Service *services.VehicleService
	Menu    *console.Menu

	mqClient *rabbitmq.Client
}

// NewApp builds every component from cfg. Console input is read from in and all
// user-facing output goes to out.
func NewApp(cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	repo, err := repositories.Open(cfg.Store, afero.NewOsFs(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to open vehicle store: %w", err)
	}

	app := &App{Config: cfg, Logger: log, Repo: repo}

	// A nil interface value, not a nil *rabbitmq.Client, disables events.
	var publisher services.EventPublisher
	if cfg.Events.Enabled {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.Events.URL,
			Exchange: cfg.Events.Exchange,
			Queue:    cfg.Events.Queue,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		app.mqClient = mqClient
		publisher = mqClient
	}

	app.Service = services.NewVehicleService(repo, validators.NewVehicleValidator(), publisher, out, log)
	app.Menu = console.NewMenu(app.Service, console.NewVehicleInput(in, out), out)
	return app, nil
}

// Run starts the interactive menu, or runs the single command named in the
// positional arguments.
func (a *App) Run() error {
	if len(a.Config.Args) == 0 {
		a.Menu.Run()
		return nil
	}
	if len(a.Config.Args) > 1 {
		return fmt.Errorf("expected at most one command, got %v", a.Config.Args)
	}
	ok, err := a.Menu.RunCommand(a.Config.Args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s failed", a.Config.Args[0])
	}
	return nil
}

// Close releases the RabbitMQ connection, if any, and flushes the logger.
func (a *App) Close() {
	if a.mqClient != nil {
		if err := a.mqClient.Close(); err != nil {
			a.Logger.Warn("Error closing RabbitMQ client", zap.Error(err))
		}
	}
	_ = a.Logger.Sync()
}

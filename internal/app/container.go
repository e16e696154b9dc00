// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/location"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/infra/sqlitestore"
	"github.com/runoshun/todo/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	DataDir      string // Per-user application directory
	ConfigPath   string // Path to config.toml
	DatabasePath string // Path to the SQLite database file
	LogPath      string // Path to the log file
}

// newConfig derives all paths from the data directory and loaded settings.
func newConfig(dataDir string, appConfig *domain.Config) Config {
	return Config{
		DataDir:      dataDir,
		ConfigPath:   domain.ConfigPath(dataDir),
		DatabasePath: domain.DatabasePath(dataDir, appConfig.Database.File),
		LogPath:      domain.LogPath(dataDir),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	Logger           domain.Logger

	// Loaded settings
	AppConfig *domain.Config

	// openStore is set until the task database has been opened
	openStore func(ctx context.Context) error

	// Resources released by Close, in order
	closers []func() error

	// Configuration
	Config Config
}

// New creates a Container rooted at dataDir and loads its config.
// Nothing is written to disk until Open is called.
// The caller must Close the returned Container.
func New(dataDir string) *Container {
	return newWithLoader(dataDir, config.NewLoader(dataDir))
}

func newWithLoader(dataDir string, loader domain.ConfigLoader) *Container {
	appConfig, err := loader.Load()
	if err != nil {
		// Fall back to defaults; the root command prints the warning.
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = append(appConfig.Warnings, fmt.Sprintf("ignoring config: %v", err))
	}

	logger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level))

	c := &Container{
		Clock:     domain.RealClock{},
		Logger:    logger,
		AppConfig: appConfig,
		closers:   []func() error{logger.Close},
		Config:    newConfig(dataDir, appConfig),
	}
	c.openStore = c.openSQLiteStore
	return c
}

// Open creates the data directory, then opens and initializes the task database.
// It is a no-op after the first call and for containers built with NewWithDeps.
func (c *Container) Open(ctx context.Context) error {
	if c.openStore == nil {
		return nil
	}
	open := c.openStore
	c.openStore = nil
	return open(ctx)
}

func (c *Container) openSQLiteStore(ctx context.Context) error {
	if err := location.EnsureDir(c.Config.DataDir); err != nil {
		return err
	}
	for _, w := range c.AppConfig.Warnings {
		c.Logger.Warn(0, "config", w)
	}

	store, err := sqlitestore.Open(c.Config.DatabasePath)
	if err != nil {
		c.Logger.Error(0, "store", err.Error())
		return err
	}
	c.closers = append([]func() error{store.Close}, c.closers...)
	c.Tasks = store
	c.StoreInitializer = store

	if err := c.StoreInitializer.Initialize(ctx); err != nil {
		c.Logger.Error(0, "store", err.Error())
		return err
	}
	c.Logger.Debug(0, "store", "opened "+store.Path())
	return nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, storeInit domain.StoreInitializer, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:            tasks,
		StoreInitializer: storeInit,
		Clock:            clock,
		Logger:           logger,
		AppConfig:        domain.NewDefaultConfig(),
		Config:           cfg,
	}
}

// Close releases the database handle and the log file.
func (c *Container) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

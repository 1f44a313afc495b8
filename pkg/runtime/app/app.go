// Package app wires settings into the services the command line uses.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/authoring"
	"github.com/de-tools/dept-reports/pkg/services/config"
	"github.com/de-tools/dept-reports/pkg/services/directory"
	"github.com/de-tools/dept-reports/pkg/services/router"
	"github.com/de-tools/dept-reports/pkg/services/serializer"
	"github.com/de-tools/dept-reports/pkg/store/duckdb"
	"github.com/de-tools/dept-reports/pkg/store/duckdb/report"
	"github.com/rs/zerolog"
)

type App struct {
	Settings   config.Settings
	Router     *router.Router
	Serializer *serializer.Serializer
	Directory  directory.Directory
	Uploader   authoring.Uploader

	mu    sync.Mutex
	db    *sql.DB
	store report.Store
}

// New builds the in-memory services. The database is opened on first use.
func New(settings config.Settings) (*App, error) {
	r, err := router.New(router.DefaultRegistry())
	if err != nil {
		return nil, err
	}

	s, err := serializer.New(serializer.Settings{Currency: settings.Currency})
	if err != nil {
		return nil, fmt.Errorf("failed to create serializer: %w", err)
	}

	var dir directory.Directory = directory.Empty()
	if settings.DirectoryPath != "" {
		fd, err := directory.NewFileDirectory(settings.DirectoryPath)
		if err != nil {
			return nil, err
		}
		dir = fd
	}

	return &App{
		Settings:   settings,
		Router:     r,
		Serializer: s,
		Directory:  dir,
		Uploader:   NewLocalUploader(),
	}, nil
}

func (a *App) Store() (report.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.store != nil {
		return a.store, nil
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: a.Settings.DBPath})
	if err != nil {
		return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	s, err := report.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create report store: %w", err)
	}

	a.db = db
	a.store = s
	return s, nil
}

func (a *App) Authoring() (*authoring.Service, error) {
	s, err := a.Store()
	if err != nil {
		return nil, err
	}
	return authoring.NewService(a.Router, a.Serializer, s, a.Uploader)
}

// User resolves the acting user. A directory id wins; otherwise the given
// name and position are used as-is.
func (a *App) User(ctx context.Context, id, name, position, department string) (domain.User, error) {
	if id != "" {
		return directory.User(ctx, a.Directory, id)
	}
	if name == "" {
		return domain.User{}, fmt.Errorf("either a directory user id or a name is required")
	}
	return domain.User{Name: name, Position: position, Department: department}, nil
}

func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db, a.store = nil, nil
	return err
}

// Logger builds the process logger at the configured level.
func Logger(settings config.Settings, base zerolog.Logger) zerolog.Logger {
	lvl, err := settings.Level()
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return base.Level(lvl)
}

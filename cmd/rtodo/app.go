package main

import (
	"time"

	"github.com/amonks/rtodo/internal/config"
	"github.com/amonks/rtodo/internal/logging"
	"github.com/amonks/rtodo/internal/paths"
	"github.com/amonks/rtodo/internal/todoenv"
	"github.com/amonks/rtodo/todo"
	"github.com/charmbracelet/log"
)

var (
	rootFile    string
	rootConfig  string
	rootVerbose bool
)

// app holds what every command needs: configuration, a logger, and the
// resolved store path.
type app struct {
	cfg       *config.Config
	logger    *log.Logger
	storePath string
}

func loadApp() (*app, error) {
	configPath, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:   todoenv.FirstNonEmpty(todoenv.LogLevel(), cfg.Log.Level),
		Format:  cfg.Log.Format,
		Verbose: rootVerbose,
	})
	if err != nil {
		return nil, err
	}

	storePath, err := resolveStorePath(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved paths", "config", configPath, "store", storePath)

	return &app{cfg: cfg, logger: logger, storePath: storePath}, nil
}

func resolveConfigPath() (string, error) {
	override := todoenv.FirstNonEmpty(rootConfig, todoenv.ConfigPath())
	path, err := paths.ResolveWithDefault(override, paths.DefaultConfigPath)
	if err != nil {
		return "", err
	}
	return paths.Expand(path)
}

// resolveStorePath applies flag > RTODO_FILE > config > default.
func resolveStorePath(cfg *config.Config) (string, error) {
	override := todoenv.FirstNonEmpty(rootFile, todoenv.StorePath(), cfg.Store.Path)
	path, err := paths.ResolveWithDefault(override, paths.DefaultStorePath)
	if err != nil {
		return "", err
	}
	return paths.Expand(path)
}

func (a *app) storeOptions() todo.Options {
	return todo.Options{Logger: a.logger}
}

// update runs fn against a refreshed store under an exclusive lock and saves
// the result if fn succeeds.
func (a *app) update(now time.Time, fn func(s *todo.Store) error) error {
	return todo.Update(a.storePath, a.storeOptions(), func(s *todo.Store) error {
		a.refresh(s, now)
		return fn(s)
	})
}

// view runs fn against a refreshed store under a shared lock. Nothing is saved.
func (a *app) view(now time.Time, fn func(s *todo.Store) error) error {
	return todo.View(a.storePath, a.storeOptions(), func(s *todo.Store) error {
		a.refresh(s, now)
		return fn(s)
	})
}

func (a *app) refresh(s *todo.Store, now time.Time) int {
	changed := s.RefreshStatuses(now)
	a.logger.Debug("refreshed statuses", "active", s.Len(), "overdue", changed)
	if changed > 0 {
		a.logger.Info("marked todos overdue", "count", changed)
	}
	return changed
}

package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/amonks/rtodo/internal/config"
	"github.com/amonks/rtodo/internal/testsupport"
	"github.com/amonks/rtodo/internal/todoenv"
	"github.com/amonks/rtodo/todo"
)

func withRootFile(t *testing.T, value string) {
	t.Helper()
	prev := rootFile
	rootFile = value
	t.Cleanup(func() {
		rootFile = prev
	})
}

func TestResolveStorePathPrecedence(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	cfg := &config.Config{}

	got, err := resolveStorePath(cfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := filepath.Join(home, ".rtodo2", "todo_file"); got != want {
		t.Fatalf("expected default %q, got %q", want, got)
	}

	cfg.Store.Path = "~/notes/todo.json"
	got, err = resolveStorePath(cfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := filepath.Join(home, "notes", "todo.json"); got != want {
		t.Fatalf("expected config path %q, got %q", want, got)
	}

	t.Setenv(todoenv.FileEnvVar, "/env/todo.json")
	got, err = resolveStorePath(cfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "/env/todo.json" {
		t.Fatalf("expected env path, got %q", got)
	}

	withRootFile(t, "/flag/todo.json")
	got, err = resolveStorePath(cfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "/flag/todo.json" {
		t.Fatalf("expected flag path, got %q", got)
	}
}

func TestAppUpdateRefreshesBeforeMutation(t *testing.T) {
	testsupport.SetupTestHome(t)
	withRootFile(t, filepath.Join(t.TempDir(), "todo_file"))

	a, err := loadApp()
	if err != nil {
		t.Fatalf("load app: %v", err)
	}

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	item, err := todo.New("Expired", todo.NewOptions{}, created)
	if err != nil {
		t.Fatalf("new todo: %v", err)
	}
	if err := a.update(created, func(s *todo.Store) error {
		_, err := s.Add(item)
		return err
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var seen todo.Status
	err = a.update(created.AddDate(0, 0, 2), func(s *todo.Store) error {
		got, err := s.Get(0)
		seen = got.Status
		return err
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if seen != todo.StatusOverdue {
		t.Fatalf("expected refreshed status Overdue, got %s", seen)
	}

	err = a.view(created, func(s *todo.Store) error {
		got, err := s.Get(0)
		seen = got.Status
		return err
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if seen != todo.StatusOverdue {
		t.Fatalf("expected overdue status to persist, got %s", seen)
	}
}

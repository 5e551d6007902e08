package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"
)

// Store holds the active and completed todos of one session.
// A Store is not safe for concurrent use; Update serializes sessions across
// processes.
type Store struct {
	path      string
	active    []Todo
	completed []Todo
	logger    *log.Logger
}

// Options configures how a store is opened.
type Options struct {
	// Logger receives debug events. If nil, logs are discarded.
	Logger *log.Logger
}

type document struct {
	Todos          []Todo `json:"todos"`
	CompletedTodos []Todo `json:"completed_todos"`
}

// CompleteResult describes the effect of completing a todo.
type CompleteResult struct {
	// Done is the completed todo, now at the end of the completed list.
	Done Todo
	// Successor is the todo spawned by a recurring lifecycle, if any.
	Successor *Todo
	// SuccessorIndex is the successor's index in the active list, or -1.
	SuccessorIndex int
}

// NewStore returns an empty store that saves to path.
func NewStore(path string, opts Options) *Store {
	return &Store{
		path:      path,
		active:    []Todo{},
		completed: []Todo{},
		logger:    loggerOrDiscard(opts.Logger),
	}
}

func loggerOrDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}

// Load reads the store at path, creating its parent directory if needed.
// A missing or blank file yields an empty store. Content that is present
// but invalid returns a *ParseError.
func Load(path string, opts Options) (*Store, error) {
	store := NewStore(path, opts)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &IOError{Op: "create directory for", Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		store.logger.Debug("store file missing, starting empty", "path", path)
		return store, nil
	}
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		store.logger.Debug("store file empty, starting empty", "path", path)
		return store, nil
	}

	doc, err := decodeDocument(path, data)
	if err != nil {
		return nil, err
	}

	if doc.Todos != nil {
		store.active = doc.Todos
	}
	if doc.CompletedTodos != nil {
		store.completed = doc.CompletedTodos
	}
	store.logger.Debug("loaded store", "path", path, "active", len(store.active), "completed", len(store.completed))
	return store, nil
}

func decodeDocument(path string, data []byte) (document, error) {
	if err := validateDocument(data); err != nil {
		var violation *schemaViolation
		if errors.As(err, &violation) {
			return document{}, &ParseError{Path: path, Location: violation.Location, Err: violation}
		}
		return document{}, &ParseError{Path: path, Err: err}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, &ParseError{Path: path, Err: err}
	}

	for i := range doc.Todos {
		if err := validateStoredTodo(&doc.Todos[i]); err != nil {
			return document{}, &ParseError{Path: path, Location: fmt.Sprintf("/todos/%d", i), Err: err}
		}
	}
	for i := range doc.CompletedTodos {
		if err := validateStoredTodo(&doc.CompletedTodos[i]); err != nil {
			return document{}, &ParseError{Path: path, Location: fmt.Sprintf("/completed_todos/%d", i), Err: err}
		}
	}
	return doc, nil
}

// Path returns the file the store loads from and saves to.
func (s *Store) Path() string {
	return s.path
}

// Save writes the store to its path.
func (s *Store) Save() error {
	return s.SaveTo(s.path)
}

// SaveTo writes the store to path as indented JSON.
// The file is replaced atomically; a failed save leaves the previous file intact.
func (s *Store) SaveTo(path string) error {
	data, err := s.encode()
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(path); err == nil {
		if bytes.Equal(existing, data) {
			s.logger.Debug("store unchanged, skipping save", "path", path)
			return nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return &IOError{Op: "read", Path: path, Err: err}
	}

	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	s.logger.Debug("saved store", "path", path, "active", len(s.active), "completed", len(s.completed))
	return nil
}

func (s *Store) encode() ([]byte, error) {
	doc := document{Todos: s.active, CompletedTodos: s.completed}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal store: %w", err)
	}
	return append(data, '\n'), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "create directory for", Path: path, Err: err}
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return &IOError{Op: "create temp file for", Path: path, Err: err}
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err == nil {
		err = tmpFile.Sync()
	}
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return &IOError{Op: "write temp file for", Path: path, Err: err}
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return &IOError{Op: "rename temp file onto", Path: path, Err: err}
	}
	return nil
}

// Len returns the number of active todos.
func (s *Store) Len() int {
	return len(s.active)
}

// Active returns a copy of the active todos in index order.
func (s *Store) Active() []Todo {
	return slices.Clone(s.active)
}

// Completed returns a copy of the completed todos, oldest first.
func (s *Store) Completed() []Todo {
	return slices.Clone(s.completed)
}

// Get returns the active todo at index.
func (s *Store) Get(index int) (Todo, error) {
	if err := checkIndex(index, len(s.active)); err != nil {
		return Todo{}, err
	}
	return s.active[index], nil
}

// GetCompleted returns the completed todo at index.
func (s *Store) GetCompleted(index int) (Todo, error) {
	if err := checkIndex(index, len(s.completed)); err != nil {
		return Todo{}, err
	}
	return s.completed[index], nil
}

// Add appends a todo to the active list and returns its index.
// Duplicates are allowed.
func (s *Store) Add(item Todo) (int, error) {
	if err := ValidateTodo(&item); err != nil {
		return -1, err
	}
	s.active = append(s.active, item)
	index := len(s.active) - 1
	s.logger.Debug("added todo", "index", index, "title", item.Title)
	return index, nil
}

// Remove deletes the active todo at index. Later todos shift down by one.
func (s *Store) Remove(index int) (Todo, error) {
	if err := checkIndex(index, len(s.active)); err != nil {
		return Todo{}, err
	}
	removed := s.active[index]
	s.active = slices.Delete(s.active, index, index+1)
	s.logger.Debug("removed todo", "index", index, "title", removed.Title)
	return removed, nil
}

// Complete moves the active todo at index to the completed list.
// Recurring todos also append their successor to the active list.
func (s *Store) Complete(index int) (CompleteResult, error) {
	if err := checkIndex(index, len(s.active)); err != nil {
		return CompleteResult{}, err
	}

	done, successor, err := complete(s.active[index])
	if err != nil {
		return CompleteResult{}, err
	}

	s.active = slices.Delete(s.active, index, index+1)
	s.completed = append(s.completed, done)
	result := CompleteResult{Done: done, Successor: successor, SuccessorIndex: -1}
	if successor != nil {
		s.active = append(s.active, *successor)
		result.SuccessorIndex = len(s.active) - 1
		s.logger.Debug("spawned successor", "title", successor.Title, "date", successor.CreatedAt.Format(time.RFC3339))
	}
	s.logger.Debug("completed todo", "index", index, "title", done.Title)
	return result, nil
}

// Edit is recognized but has no defined behavior. It always fails without
// changing the store.
func (s *Store) Edit(index int) error {
	if err := checkIndex(index, len(s.active)); err != nil {
		return err
	}
	return &ValidationError{Err: ErrEditNotSupported}
}

// RefreshStatuses marks open active todos whose lifespan ended before now as
// overdue. It returns how many todos changed. Completed todos are untouched.
func (s *Store) RefreshStatuses(now time.Time) int {
	changed := 0
	for i := range s.active {
		if refresh(&s.active[i], now) {
			changed++
			s.logger.Debug("todo overdue", "index", i, "title", s.active[i].Title)
		}
	}
	return changed
}

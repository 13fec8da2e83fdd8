// Package store owns the canonical user collection, persisted as a single
// JSON array in a file. All read-modify-write cycles are serialized through a
// strictly FIFO queue owned by the Store instance, and a primary location
// that turns out to be unwritable (read-only filesystem under a serverless
// runtime) is swapped once, permanently, for a scratch location.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"syscall"

	"github.com/spf13/afero"

	"github.com/avinash6982/TripMakerWeb-BE/internal/common"
	"github.com/avinash6982/TripMakerWeb-BE/internal/filex"
	"github.com/avinash6982/TripMakerWeb-BE/internal/logging"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/models"
)

// Store serializes access to the user collection. Construct one per process
// with New and share it; independent instances do not coordinate.
type Store struct {
	fsys   afero.Fs
	logger logging.Logger

	mu        sync.Mutex    // guards tail, path, relocated
	tail      chan struct{} // completion signal of the most recently queued op
	path      string
	scratch   string
	relocated bool
}

func New(fsys afero.Fs, path, scratch string, logger logging.Logger) *Store {
	return &Store{
		fsys:    fsys,
		logger:  logger.With("component", "store"),
		path:    path,
		scratch: scratch,
	}
}

// enter appends the caller to the queue and blocks until every previously
// queued operation has finished. The returned channel must be closed when the
// caller's slot is done; the next waiter is parked on it.
func (s *Store) enter() chan struct{} {
	cur := make(chan struct{})
	s.mu.Lock()
	prev := s.tail
	s.tail = cur
	s.mu.Unlock()
	if prev != nil {
		<-prev
	}
	return cur
}

func (s *Store) activePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// relocate switches the active path to the scratch location. The switch is
// one-way: once relocated the primary path is never tried again for the
// lifetime of this instance.
func (s *Store) relocate(ctx context.Context, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.relocated {
		return fmt.Errorf("%w: scratch path %s also failed: %v", common.ErrStorageUnavailable, s.path, cause)
	}
	s.logger.Warn(ctx, "primary path is not writable, relocating to scratch",
		"primary", s.path, "scratch", s.scratch, "cause", cause)
	s.path = s.scratch
	s.relocated = true
	return nil
}

func isReadOnlyErr(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EROFS)
}

// readAll ensures the resource at path exists (creating the parent directory
// and an empty array if absent) and parses its full contents.
func (s *Store) readAll(path string) ([]models.UserRecord, error) {
	exists, err := afero.Exists(s.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !exists {
		if err := filex.EnsureParentDir(s.fsys, path); err != nil {
			return nil, err
		}
		if err := afero.WriteFile(s.fsys, path, []byte("[]"), 0o660); err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
	}

	data, err := afero.ReadFile(s.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return []models.UserRecord{}, nil
	}

	var users []models.UserRecord
	if err := json.Unmarshal(data, &users); err != nil {
		// Non-retryable: the operator has to repair the file by hand.
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptStore, path, err)
	}
	return users, nil
}

func (s *Store) writeAll(path string, users []models.UserRecord) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := filex.EnsureParentDir(s.fsys, path); err != nil {
		return err
	}
	if err := afero.WriteFile(s.fsys, path, data, 0o660); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// load reads the collection from the active path, relocating to scratch and
// retrying exactly once when the location rejects writes.
func (s *Store) load(ctx context.Context) ([]models.UserRecord, error) {
	users, err := s.readAll(s.activePath())
	if err == nil {
		return users, nil
	}
	if !isReadOnlyErr(err) {
		return nil, err
	}
	if err := s.relocate(ctx, err); err != nil {
		return nil, err
	}
	users, err = s.readAll(s.activePath())
	if err != nil {
		if isReadOnlyErr(err) {
			return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
		}
		return nil, err
	}
	return users, nil
}

// save replaces the full contents of the active path, with the same one-time
// scratch relocation as load. A save either fully replaces the resource or
// fails; partial writes are never left behind.
func (s *Store) save(ctx context.Context, users []models.UserRecord) error {
	err := s.writeAll(s.activePath(), users)
	if err == nil {
		return nil
	}
	if !isReadOnlyErr(err) {
		return err
	}
	if err := s.relocate(ctx, err); err != nil {
		return err
	}
	err = s.writeAll(s.activePath(), users)
	if err != nil {
		if isReadOnlyErr(err) {
			return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
		}
		return err
	}
	return nil
}

// Load reads and parses the whole collection in its own queue slot.
func (s *Store) Load(ctx context.Context) ([]models.UserRecord, error) {
	done := s.enter()
	defer close(done)
	return s.load(ctx)
}

// Save replaces the whole collection in its own queue slot.
func (s *Store) Save(ctx context.Context, users []models.UserRecord) error {
	done := s.enter()
	defer close(done)
	return s.save(ctx, users)
}

// WithSerializedAccess runs fn with exclusive logical access to the
// collection: it waits for every previously queued operation, loads the
// current collection, and persists whatever fn returns.
//
// Returning a nil collection with a nil error skips the write; read-only
// operations use that to participate in the same ordering without touching
// the file. When fn returns an error nothing is written, but the queue slot
// still completes in order.
//
// The context is not used for cancellation: once a slot starts it runs to
// completion so that no partial effect is ever left behind.
func (s *Store) WithSerializedAccess(ctx context.Context, fn func(users []models.UserRecord) ([]models.UserRecord, error)) error {
	done := s.enter()
	defer close(done)

	users, err := s.load(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(users)
	if err != nil {
		return err
	}
	if updated == nil {
		return nil
	}
	return s.save(ctx, updated)
}

// Package storage persists each record collection as a single JSON array
// in its own file, rewritten in full on every append.
package storage

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// Collection is a file-backed collection of one record kind. A mutex
// serializes the read-modify-write append cycle so concurrent creators in
// this process cannot lose updates; cross-process writers are not guarded.
type Collection[T any] struct {
	path   string
	mu     sync.Mutex
	lastID int64
}

// NewCollection binds a collection to <dir>/<filename>. The file does not
// need to exist yet; a missing file reads as an empty collection.
func NewCollection[T any](dir, filename string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dir, filename)}
}

// ReadAll loads the full collection from disk. A missing, unreadable, or
// corrupt file is logged and treated as "no records yet" rather than an
// error; this can mask real corruption but keeps a fresh data dir usable.
// Every call materializes fresh copies, so callers never share state.
func (c *Collection[T]) ReadAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLocked(), nil
}

// Find returns the first record matching the predicate, scanning in
// storage order.
func (c *Collection[T]) Find(match func(T) bool) (*T, bool) {
	c.mu.Lock()
	records := c.readLocked()
	c.mu.Unlock()

	for i := range records {
		if match(records[i]) {
			return &records[i], true
		}
	}
	return nil, false
}

// Append runs one locked read-modify-write cycle: it loads the collection,
// asks build for the new record given a fresh id and timestamp, appends it,
// and rewrites the whole file. Write failures are returned to the caller.
func (c *Collection[T]) Append(build func(id string, now time.Time) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := c.readLocked()
	now := time.Now().UTC()
	record := build(c.nextIDLocked(now), now)
	records = append(records, record)

	if err := c.writeLocked(records); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// nextIDLocked derives an id from the current time in milliseconds,
// bumping past the previous id so rapid appends stay unique.
func (c *Collection[T]) nextIDLocked(now time.Time) string {
	id := now.UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return strconv.FormatInt(id, 10)
}

func (c *Collection[T]) readLocked() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Error reading %s: %v", c.path, err)
		}
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Error parsing %s, treating as empty: %v", c.path, err)
		return []T{}
	}
	return records
}

func (c *Collection[T]) writeLocked(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

// Package record persists one installed-record file per component id.
// The existence of a record is the authoritative "is installed" signal
// consulted by the engine before re-installing.
package record

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alpforge/alpforge/internal/consts"
)

// Record is the persisted proof that a component was installed.
// Created on success, never mutated, removed on uninstall.
type Record struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Category    string    `yaml:"category,omitempty"`
	InstalledAt time.Time `yaml:"installed_at"`
	Fingerprint string    `yaml:"fingerprint,omitempty"`
}

// Error wraps a failed record read/write/remove. A failed write after a
// successful install does not roll the install back; the engine logs it
// and moves on.
type Error struct {
	ID  string
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("record %s %q: %v", e.Op, e.ID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// FS is the minimum filesystem surface the store needs. The OS
// implementation is used in production, tests swap in failures.
type FS interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Remove(name string) error
	ReadDir(name string) ([]os.DirEntry, error)
}

// OSFS is the real filesystem.
type OSFS struct{}

func (OSFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }
func (OSFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}
func (OSFS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }
func (OSFS) Remove(name string) error                     { return os.Remove(name) }
func (OSFS) ReadDir(name string) ([]os.DirEntry, error)   { return os.ReadDir(name) }

// Store reads and writes records under one directory, one file per
// component id, file name = id.
type Store struct {
	Dir string
	FS  FS
}

// NewStore creates a store over the real filesystem.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = consts.RecordDirName
	}
	return &Store{Dir: dir, FS: OSFS{}}
}

// Write persists a record.
func (s *Store) Write(rec Record) error {
	if err := s.FS.MkdirAll(s.Dir, 0o755); err != nil {
		return &Error{ID: rec.ID, Op: "write", Err: err}
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return &Error{ID: rec.ID, Op: "write", Err: err}
	}

	if err := s.FS.WriteFile(consts.RecordPath(s.Dir, rec.ID), data, 0o644); err != nil {
		return &Error{ID: rec.ID, Op: "write", Err: err}
	}
	return nil
}

// Read loads the record for one id.
func (s *Store) Read(id string) (Record, error) {
	data, err := s.FS.ReadFile(consts.RecordPath(s.Dir, id))
	if err != nil {
		return Record{}, &Error{ID: id, Op: "read", Err: err}
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, &Error{ID: id, Op: "read", Err: err}
	}
	return rec, nil
}

// Exists reports whether a record is present for the id.
func (s *Store) Exists(id string) bool {
	_, err := s.FS.ReadFile(consts.RecordPath(s.Dir, id))
	return err == nil
}

// Remove deletes the record for one id. A missing record is an error:
// uninstall of something never installed must be reported.
func (s *Store) Remove(id string) error {
	if err := s.FS.Remove(consts.RecordPath(s.Dir, id)); err != nil {
		return &Error{ID: id, Op: "remove", Err: err}
	}
	return nil
}

// List returns all records, ascending by id. A missing record
// directory means no records.
func (s *Store) List() ([]Record, error) {
	entries, err := s.FS.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &Error{Op: "list", Err: err}
	}

	var recs []Record
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		rec, err := s.Read(entry.Name())
		if err != nil {
			continue // unreadable marker, ignore
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

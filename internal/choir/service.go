// Package choir holds the orchestration logic that spans more than one
// store call: song duplication, bulk actions, the current-event invariant,
// the stale-event sweeper and photo uploads.
package choir

import (
	"time"

	"github.com/chorale-cms/chorale/internal/db"
	"github.com/chorale-cms/chorale/internal/storage"
)

type Service struct {
	store   db.Store
	storage storage.Storage

	// now is swappable for deterministic date handling in tests
	now func() time.Time
}

func NewService(store db.Store, st storage.Storage) *Service {
	return &Service{store: store, storage: st, now: time.Now}
}

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}

// BulkResult aggregates per-item outcomes of a bulk operation. Partial
// success is a first-class outcome, never an aborted batch.
type BulkResult struct {
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Errors    []BulkError `json:"errors,omitempty"`
}

type BulkError struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

func (r *BulkResult) ok(int) { r.Succeeded++ }

func (r *BulkResult) fail(id int, err error) {
	r.Failed++
	r.Errors = append(r.Errors, BulkError{ID: id, Message: err.Error()})
}

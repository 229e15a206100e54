// Package education manages the editable education entries of the
// portfolio page.
//
// The record slice is canonical; cards are rendered from it and never read
// back. The whole slice is written to storage after every mutation.
package education

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/eventlog"
	"github.com/Zachkp/portfolio/internal/storage"
)

var (
	ErrNotFound       = errors.New("education record not found")
	ErrEditInProgress = errors.New("another education entry is being edited")
	// ErrStaleForm is returned when a submitted form is not the one open.
	ErrStaleForm = errors.New("education form is no longer open")
)

// State is the edit state of the store: Idle, or Editing a record index.
type State struct {
	Editing bool
	Index   int
}

// Idle is the state with no open edit.
var Idle = State{}

func (s State) String() string {
	if !s.Editing {
		return "idle"
	}
	return fmt.Sprintf("editing(%d)", s.Index)
}

// FormHandle describes an open form. Index is -1 for a new entry.
type FormHandle struct {
	ID     string
	Index  int
	Record Record
}

// IsEdit reports whether the form edits an existing record.
func (f FormHandle) IsEdit() bool { return f.Index >= 0 }

// Confirmer asks the user whether a record may be deleted.
type Confirmer interface {
	Confirm(r Record) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(Record) bool

func (f ConfirmFunc) Confirm(r Record) bool { return f(r) }

// Result tells the caller what a submit did.
type Result struct {
	Index   int
	Updated bool
}

// Store owns the education collection and its edit state.
type Store struct {
	mu      sync.Mutex
	records []Record
	state   State
	// form is the ID of the open form handle, empty when none is open.
	form string

	store  storage.Adapter
	events *eventlog.Logger
	trace  *zap.Logger
}

// NewStore creates a store showing defaults until Hydrate finds saved data.
func NewStore(store storage.Adapter, events *eventlog.Logger, trace *zap.Logger, defaults []Record) *Store {
	return &Store{
		records: append([]Record(nil), defaults...),
		store:   store,
		events:  events,
		trace:   trace,
	}
}

// Records returns a copy of the collection in display order.
func (s *Store) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.records...)
}

// Get returns the record at index.
func (s *Store) Get(index int) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.records) {
		return Record{}, fmt.Errorf("index %d: %w", index, ErrNotFound)
	}
	return s.records[index], nil
}

// FormOpen reports whether an add or edit form is open.
func (s *Store) FormOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form != ""
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Create appends rec and persists the collection.
func (s *Store) Create(ctx context.Context, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()

	s.logAction(ctx, "create", map[string]any{"degree": rec.Degree})
	s.Persist(ctx)
	return nil
}

// OpenNew opens an empty form for a new record.
func (s *Store) OpenNew(ctx context.Context) (FormHandle, error) {
	s.mu.Lock()
	if s.state.Editing {
		s.mu.Unlock()
		return FormHandle{}, ErrEditInProgress
	}
	h := FormHandle{ID: uuid.NewString(), Index: -1}
	s.form = h.ID
	s.mu.Unlock()

	s.logAction(ctx, "add_new", nil)
	return h, nil
}

// StartEdit opens a form pre-filled with the record at index. Only one edit
// may be open at a time.
func (s *Store) StartEdit(ctx context.Context, index int) (FormHandle, error) {
	s.mu.Lock()
	if s.state.Editing {
		s.mu.Unlock()
		return FormHandle{}, ErrEditInProgress
	}
	if index < 0 || index >= len(s.records) {
		s.mu.Unlock()
		return FormHandle{}, fmt.Errorf("index %d: %w", index, ErrNotFound)
	}
	s.state = State{Editing: true, Index: index}
	h := FormHandle{ID: uuid.NewString(), Index: index, Record: s.records[index]}
	s.form = h.ID
	s.mu.Unlock()

	s.logAction(ctx, "edit", map[string]any{"degree": h.Record.Degree})
	return h, nil
}

// Submit writes back the form identified by formID: an edit form overwrites
// its record in place, an add form appends. A form that is no longer the
// open one is rejected with ErrStaleForm. The form is closed and the
// collection saved.
func (s *Store) Submit(ctx context.Context, formID string, rec Record) (Result, error) {
	if err := rec.Validate(); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	if formID == "" || formID != s.form {
		s.mu.Unlock()
		return Result{}, ErrStaleForm
	}
	var res Result
	if s.state.Editing {
		s.records[s.state.Index] = rec
		res = Result{Index: s.state.Index, Updated: true}
	} else {
		s.records = append(s.records, rec)
		res = Result{Index: len(s.records) - 1}
	}
	// Closed under the same lock so a form can be submitted once only.
	s.state = Idle
	s.form = ""
	s.mu.Unlock()

	action := "create"
	if res.Updated {
		action = "update"
	}
	s.logAction(ctx, action, map[string]any{"degree": rec.Degree})
	s.logAction(ctx, "cancel_form", nil)
	s.Persist(ctx)
	return res, nil
}

// Cancel closes the open form without touching any record.
func (s *Store) Cancel(ctx context.Context) {
	s.mu.Lock()
	s.state = Idle
	s.form = ""
	s.mu.Unlock()

	s.logAction(ctx, "cancel_form", nil)
}

// Delete removes the record at index once confirm agrees. It reports whether
// a record was removed.
func (s *Store) Delete(ctx context.Context, index int, confirm Confirmer) (bool, error) {
	rec, err := s.Get(index)
	if err != nil {
		return false, err
	}
	if confirm == nil || !confirm.Confirm(rec) {
		return false, nil
	}

	s.mu.Lock()
	// The collection may have changed while the user was asked.
	if index >= len(s.records) || s.records[index] != rec {
		s.mu.Unlock()
		return false, fmt.Errorf("index %d: %w", index, ErrNotFound)
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	switch {
	case !s.state.Editing:
	case s.state.Index == index:
		s.state = Idle
		s.form = ""
	case s.state.Index > index:
		s.state.Index--
	}
	s.mu.Unlock()

	s.logAction(ctx, "delete", map[string]any{"degree": rec.Degree})
	s.Persist(ctx)
	return true, nil
}

// Persist writes the whole collection to storage. Failures are traced and
// otherwise ignored.
func (s *Store) Persist(ctx context.Context) {
	s.mu.Lock()
	records := append([]Record{}, s.records...)
	s.mu.Unlock()

	b, err := json.Marshal(records)
	if err != nil {
		s.trace.Warn("could not save education data", zap.Error(errors.Join(storage.ErrSerialization, err)))
		return
	}
	if err := s.store.Set(ctx, storage.KeyEducation, string(b)); err != nil {
		s.trace.Warn("could not save education data", zap.Error(err))
		return
	}
	s.logAction(ctx, "save_to_storage", map[string]any{"count": len(records)})
}

// Hydrate replaces the collection with the saved one. Absent or unreadable
// data leaves the current records untouched. It reports whether saved data
// was loaded.
func (s *Store) Hydrate(ctx context.Context) bool {
	raw, ok, err := s.store.Get(ctx, storage.KeyEducation)
	if err != nil {
		s.trace.Warn("could not load education data", zap.Error(err))
		return false
	}
	if !ok || raw == "" {
		return false
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.trace.Warn("could not load education data", zap.Error(err))
		return false
	}

	s.mu.Lock()
	s.records = records
	s.state = Idle
	s.form = ""
	s.mu.Unlock()

	s.logAction(ctx, "load_from_storage", map[string]any{"count": len(records)})
	return true
}

func (s *Store) logAction(ctx context.Context, action string, data map[string]any) {
	payload := map[string]any{"action": action}
	for k, v := range data {
		payload[k] = v
	}
	s.events.LogEvent(ctx, eventlog.EducationAction, payload)
}

// Package directory owns the ordered, identifier-unique user directory and
// merges created/updated records into it.
package directory

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/EO-DataHub/eodhp-directory-services/internal/events"
	"github.com/EO-DataHub/eodhp-directory-services/internal/metrics"
	"github.com/EO-DataHub/eodhp-directory-services/internal/validate"
	"github.com/EO-DataHub/eodhp-directory-services/models"
	"github.com/google/uuid"
)

var (
	// ErrDuplicateID is returned when a created record reuses an existing id.
	ErrDuplicateID = errors.New("user id already exists")
	// ErrNotFound is returned when no record carries the requested id.
	ErrNotFound = errors.New("user not found")
	// ErrUnknownAction is returned for events that are neither created nor updated.
	ErrUnknownAction = errors.New("unknown event action")
)

// Event reports that a record was created or updated by the edit flow.
type Event struct {
	ID     uuid.UUID
	Action string
	Record json.RawMessage
}

// NewEvent stamps a fresh event ID.
func NewEvent(action string, record json.RawMessage) Event {
	return Event{ID: uuid.New(), Action: action, Record: record}
}

// EventFromPayload converts a message received from the event bus.
func EventFromPayload(p events.EventPayload) Event {
	return Event{ID: p.ID, Action: p.Action, Record: p.User}
}

// Outcome is the result of applying one event.
type Outcome struct {
	EventID  uuid.UUID
	Applied  bool
	Changed  bool
	Replayed bool
	Record   models.UserRecord
	Err      error
}

// Directory is an in-memory ordered list of user records.
type Directory struct {
	mu    sync.RWMutex
	users []models.UserRecord
	index map[int64]int
}

// New builds a directory from seed. Seed ids must be unique.
func New(seed []models.UserRecord) (*Directory, error) {
	d := &Directory{
		users: make([]models.UserRecord, 0, len(seed)),
		index: make(map[int64]int, len(seed)),
	}
	for _, u := range seed {
		if err := d.Add(u); err != nil {
			return nil, fmt.Errorf("invalid seed: %w", err)
		}
	}
	return d, nil
}

// Snapshot returns a copy of the ordered list.
func (d *Directory) Snapshot() []models.UserRecord {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.UserRecord, len(d.users))
	copy(out, d.users)
	return out
}

// Len returns the number of records.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}

// Get returns a copy of the record with id.
func (d *Directory) Get(id int64) (models.UserRecord, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, ok := d.index[id]
	if !ok {
		return models.UserRecord{}, false
	}
	return d.users[i], true
}

// NextID is one past the highest id in the directory.
func (d *Directory) NextID() int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var max int64
	for _, u := range d.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// Add appends rec to the end of the list.
func (d *Directory) Add(rec models.UserRecord) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.index[rec.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, rec.ID)
	}
	d.index[rec.ID] = len(d.users)
	d.users = append(d.users, rec)
	metrics.DirectorySize.Set(float64(len(d.users)))
	return nil
}

// Update replaces the record with the same id in place. It reports whether
// any field changed; a missing id yields ErrNotFound and leaves the list as is.
func (d *Directory) Update(rec models.UserRecord) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i, ok := d.index[rec.ID]
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrNotFound, rec.ID)
	}
	if d.users[i] == rec {
		return false, nil
	}
	d.users[i] = rec
	return true, nil
}

// Apply validates the event record and merges it.
func (d *Directory) Apply(event Event) Outcome {
	out := Outcome{EventID: event.ID}

	rec, err := validate.UserRecord(event.Record)
	if err != nil {
		out.Err = err
		return out
	}
	out.Record = rec

	switch event.Action {
	case events.ActionCreated:
		if err := d.Add(rec); err != nil {
			out.Err = err
			return out
		}
		out.Applied, out.Changed = true, true
	case events.ActionUpdated:
		changed, err := d.Update(rec)
		if err != nil {
			out.Err = err
			return out
		}
		out.Applied, out.Changed = true, changed
	default:
		out.Err = fmt.Errorf("%w: %q", ErrUnknownAction, event.Action)
	}

	return out
}

// EditRequestFor forwards a full copy of the record with id to the edit screen.
func (d *Directory) EditRequestFor(id int64) (models.EditRequest, error) {
	rec, ok := d.Get(id)
	if !ok {
		return models.EditRequest{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return models.EditRequest{User: &rec}, nil
}

// NewEditRequest opens the edit screen in creation mode.
func (d *Directory) NewEditRequest() models.EditRequest {
	return models.EditRequest{NextID: d.NextID()}
}

package directory

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/EO-DataHub/eodhp-directory-services/internal/events"
	"github.com/EO-DataHub/eodhp-directory-services/internal/validate"
	"github.com/EO-DataHub/eodhp-directory-services/models"
)

// ErrIDMismatch is returned when an edited record changes its identifier.
var ErrIDMismatch = errors.New("user id does not match the edited record")

// EditSession turns the result of the edit screen into a directory event.
type EditSession struct {
	req models.EditRequest
}

func NewEditSession(req models.EditRequest) *EditSession {
	return &EditSession{req: req}
}

// Request returns the request the session was opened with.
func (s *EditSession) Request() models.EditRequest {
	return s.req
}

// Commit validates the edited record. In creation mode it yields a created
// event, otherwise an updated event for the original identifier.
func (s *EditSession) Commit(raw json.RawMessage) (Event, models.UserRecord, error) {
	rec, err := validate.UserRecord(raw)
	if err != nil {
		return Event{}, rec, err
	}

	if s.req.CreationMode() {
		return NewEvent(events.ActionCreated, raw), rec, nil
	}

	if rec.ID != s.req.User.ID {
		return Event{}, rec, fmt.Errorf("%w: got %d, want %d", ErrIDMismatch, rec.ID, s.req.User.ID)
	}
	return NewEvent(events.ActionUpdated, raw), rec, nil
}

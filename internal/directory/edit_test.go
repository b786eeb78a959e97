package directory

import (
	"encoding/json"
	"testing"

	"github.com/EO-DataHub/eodhp-directory-services/internal/events"
	"github.com/EO-DataHub/eodhp-directory-services/internal/validate"
	"github.com/EO-DataHub/eodhp-directory-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditSession_CreationMode(t *testing.T) {
	s := NewEditSession(models.EditRequest{NextID: 11})

	event, rec, err := s.Commit(json.RawMessage(`{"id": 11, "name": "a", "email": "b", "company": {"name": "c"}}`))
	require.NoError(t, err)
	assert.Equal(t, events.ActionCreated, event.Action)
	assert.Equal(t, int64(11), rec.ID)
}

func TestEditSession_UpdateKeepsIdentifier(t *testing.T) {
	original := SeedUsers()[0]
	s := NewEditSession(models.EditRequest{User: &original})

	edited := original
	edited.Phone = "000"
	event, _, err := s.Commit(rawRecord(t, edited))
	require.NoError(t, err)
	assert.Equal(t, events.ActionUpdated, event.Action)

	edited.ID = 2
	_, _, err = s.Commit(rawRecord(t, edited))
	assert.ErrorIs(t, err, ErrIDMismatch)
}

func TestEditSession_Malformed(t *testing.T) {
	s := NewEditSession(models.EditRequest{})

	_, _, err := s.Commit(json.RawMessage(`{"id": 1}`))

	var verr *validate.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/EO-DataHub/eodhp-directory-services/internal/events"
	"github.com/EO-DataHub/eodhp-directory-services/internal/metrics"
	"github.com/EO-DataHub/eodhp-directory-services/internal/validate"
	"github.com/EO-DataHub/eodhp-directory-services/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const replayWindow = 1024

type envelope struct {
	event Event
	reply chan Outcome
}

// Reconciler is the single consumer of directory events. All mutations of
// the directory go through Run.
type Reconciler struct {
	dir      *Directory
	inbox    chan envelope
	notifier events.Notifier
	log      *zerolog.Logger

	seen  map[uuid.UUID]Outcome
	order []uuid.UUID
}

// NewReconciler creates a reconciler for dir. notifier may be nil.
func NewReconciler(dir *Directory, notifier events.Notifier, log *zerolog.Logger) *Reconciler {
	return &Reconciler{
		dir:      dir,
		inbox:    make(chan envelope),
		notifier: notifier,
		log:      log,
		seen:     make(map[uuid.UUID]Outcome, replayWindow),
	}
}

// Directory returns the directory owned by r.
func (r *Reconciler) Directory() *Directory {
	return r.dir
}

// Run applies submitted events in arrival order until ctx is done.
func (r *Reconciler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env := <-r.inbox:
			env.reply <- r.apply(env.event)
		}
	}
}

// Submit hands event to the running reconciler and waits for its outcome.
func (r *Reconciler) Submit(ctx context.Context, event Event) (Outcome, error) {
	env := envelope{event: event, reply: make(chan Outcome, 1)}

	select {
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	case r.inbox <- env:
	}

	select {
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	case out := <-env.reply:
		return out, nil
	}
}

// Handle adapts Submit to the event bus consumer. Only a failure to reach the
// reconciler is reported; rejected records are not worth redelivering.
func (r *Reconciler) Handle(ctx context.Context, payload events.EventPayload) error {
	_, err := r.Submit(ctx, EventFromPayload(payload))
	return err
}

// ApplyNavigation processes the new record and then the updated record carried
// by one navigation round-trip. Absent or null keys are skipped and malformed
// records are dropped without surfacing an error.
func (r *Reconciler) ApplyNavigation(ctx context.Context, payload models.NavigationPayload) ([]Outcome, error) {
	var outcomes []Outcome

	for _, item := range []struct {
		action string
		raw    json.RawMessage
	}{
		{events.ActionCreated, payload.NewUser},
		{events.ActionUpdated, payload.UpdatedUser},
	} {
		if !supplied(item.raw) {
			continue
		}
		out, err := r.Submit(ctx, NewEvent(item.action, item.raw))
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, out)
	}

	return outcomes, nil
}

func (r *Reconciler) apply(event Event) Outcome {
	if prev, ok := r.seen[event.ID]; ok {
		prev.Replayed = true
		metrics.DirectoryEvents.WithLabelValues(event.Action, "replayed").Inc()
		return prev
	}

	out := r.dir.Apply(event)
	r.remember(event.ID, out)

	logger := r.log.With().
		Str("event_id", event.ID.String()).
		Str("action", event.Action).
		Logger()

	switch {
	case errors.Is(out.Err, validate.ErrMalformed):
		metrics.DirectoryEvents.WithLabelValues(event.Action, "malformed").Inc()
		logger.Debug().Err(out.Err).Msg("Dropping malformed user record")
	case errors.Is(out.Err, ErrNotFound):
		metrics.DirectoryEvents.WithLabelValues(event.Action, "no_match").Inc()
		logger.Debug().Int64("user_id", out.Record.ID).Msg("No user to update")
	case out.Err != nil:
		metrics.DirectoryEvents.WithLabelValues(event.Action, "rejected").Inc()
		logger.Warn().Err(out.Err).Msg("User record rejected")
	case !out.Changed:
		metrics.DirectoryEvents.WithLabelValues(event.Action, "unchanged").Inc()
	default:
		metrics.DirectoryEvents.WithLabelValues(event.Action, "applied").Inc()
		logger.Info().Int64("user_id", out.Record.ID).Msg("User record applied")
		r.notify(event, out.Record, &logger)
	}

	return out
}

func (r *Reconciler) notify(event Event, rec models.UserRecord, logger *zerolog.Logger) {
	if r.notifier == nil {
		return
	}
	body, err := json.Marshal(rec)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode user record for notification")
		return
	}
	payload := events.NewEventPayload(event.Action, body)
	payload.ID = event.ID
	if err := r.notifier.Notify(payload); err != nil {
		logger.Error().Err(err).Msg("Failed to publish directory event")
	}
}

func (r *Reconciler) remember(id uuid.UUID, out Outcome) {
	if len(r.order) == replayWindow {
		delete(r.seen, r.order[0])
		r.order = r.order[1:]
	}
	r.seen[id] = out
	r.order = append(r.order, id)
}

func supplied(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

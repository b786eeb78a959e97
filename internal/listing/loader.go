// Package listing loads the remote user collection shown on the API data screen.
package listing

import (
	"context"
	"sync"
	"time"

	"github.com/EO-DataHub/eodhp-directory-services/internal/metrics"
	"github.com/EO-DataHub/eodhp-directory-services/models"
	"github.com/rs/zerolog"
)

// FailureMessage is the only error text ever shown to users.
const FailureMessage = "Failed to fetch data from API. Please try again later."

type Status string

const (
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)

// State is the view model of the listing screen.
type State struct {
	Status  Status
	Users   []models.RemoteUserRecord
	Message string
}

// Loader fetches the collection once per activation. Results of an activation
// that has since been superseded or deactivated are discarded.
type Loader struct {
	fetcher Fetcher
	log     *zerolog.Logger

	mu         sync.Mutex
	generation uint64
	active     bool
	state      State
}

func NewLoader(fetcher Fetcher, log *zerolog.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		log:     log,
		state:   State{Status: StatusLoading},
	}
}

// Activate resets the view to loading and starts one fetch in the background.
// The returned channel is closed once the fetch has resolved.
func (l *Loader) Activate(ctx context.Context) <-chan struct{} {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.active = true
	l.state = State{Status: StatusLoading}
	l.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.resolve(gen, l.fetch(ctx))
	}()
	return done
}

// Deactivate stops observing the in-flight fetch, if any.
func (l *Loader) Deactivate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation++
	l.active = false
}

// Active reports whether the screen is currently activated.
func (l *Loader) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// State returns a copy of the current view model.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.state
	if s.Users != nil {
		s.Users = append([]models.RemoteUserRecord(nil), s.Users...)
	}
	return s
}

// Load performs one fetch synchronously without touching the loader state.
func (l *Loader) Load(ctx context.Context) State {
	s := l.fetch(ctx)
	metrics.RemoteFetches.WithLabelValues(string(s.Status)).Inc()
	return s
}

func (l *Loader) fetch(ctx context.Context) State {
	started := time.Now()
	users, err := l.fetcher.FetchUsers(ctx)
	metrics.RemoteFetchLatency.Observe(time.Since(started).Seconds())

	if err != nil {
		l.log.Error().Err(err).Msg("Failed to fetch remote users")
		return State{Status: StatusFailed, Message: FailureMessage}
	}
	if users == nil {
		users = []models.RemoteUserRecord{}
	}
	return State{Status: StatusLoaded, Users: users}
}

func (l *Loader) resolve(gen uint64, s State) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		metrics.RemoteFetches.WithLabelValues("discarded").Inc()
		l.log.Debug().Msg("Discarding remote users fetched for an inactive screen")
		return
	}
	metrics.RemoteFetches.WithLabelValues(string(s.Status)).Inc()
	l.state = s
}

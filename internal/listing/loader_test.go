package listing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/EO-DataHub/eodhp-directory-services/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	release chan struct{}
	users   []models.RemoteUserRecord
	err     error
}

func (f *fakeFetcher) FetchUsers(ctx context.Context) ([]models.RemoteUserRecord, error) {
	if f.release != nil {
		<-f.release
	}
	return f.users, f.err
}

func newLoader(f Fetcher) *Loader {
	logger := zerolog.Nop()
	return NewLoader(f, &logger)
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("fetch did not resolve")
	}
}

func TestLoader_InitialStateIsLoading(t *testing.T) {
	l := newLoader(&fakeFetcher{})
	assert.Equal(t, StatusLoading, l.State().Status)
}

func TestLoader_Loaded(t *testing.T) {
	users := []models.RemoteUserRecord{
		{ID: 1, Name: "a", Email: "a@example.com", Company: models.Company{Name: "A"}},
		{ID: 2, Name: "b", Email: "b@example.com", Company: models.Company{Name: "B"}},
	}
	l := newLoader(&fakeFetcher{users: users})

	wait(t, l.Activate(context.Background()))

	s := l.State()
	assert.Equal(t, StatusLoaded, s.Status)
	assert.Equal(t, users, s.Users)
	assert.Empty(t, s.Message)
}

func TestLoader_LoadedEmpty(t *testing.T) {
	l := newLoader(&fakeFetcher{})

	wait(t, l.Activate(context.Background()))

	s := l.State()
	assert.Equal(t, StatusLoaded, s.Status)
	assert.NotNil(t, s.Users)
	assert.Empty(t, s.Users)
}

func TestLoader_FailedHidesUnderlyingError(t *testing.T) {
	l := newLoader(&fakeFetcher{err: errors.New("dial tcp: connection refused")})

	wait(t, l.Activate(context.Background()))

	s := l.State()
	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, FailureMessage, s.Message)
	assert.Nil(t, s.Users)
}

func TestLoader_LateResultAfterDeactivateIsDiscarded(t *testing.T) {
	f := &fakeFetcher{release: make(chan struct{}), users: []models.RemoteUserRecord{{ID: 1}}}
	l := newLoader(f)

	done := l.Activate(context.Background())
	l.Deactivate()
	close(f.release)
	wait(t, done)

	assert.False(t, l.Active())
	assert.Equal(t, StatusLoading, l.State().Status)
}

// scriptedFetcher blocks its first call until release is closed and fails it;
// later calls succeed immediately.
type scriptedFetcher struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
}

func (f *scriptedFetcher) FetchUsers(ctx context.Context) ([]models.RemoteUserRecord, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()

	if call == 1 {
		<-f.release
		return nil, errors.New("slow failure")
	}
	return []models.RemoteUserRecord{{ID: 7}}, nil
}

func TestLoader_ReactivationSupersedesEarlierFetch(t *testing.T) {
	f := &scriptedFetcher{release: make(chan struct{})}
	l := newLoader(f)

	first := l.Activate(context.Background())
	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.calls == 1
	}, time.Second, time.Millisecond)

	wait(t, l.Activate(context.Background()))
	require.Equal(t, StatusLoaded, l.State().Status)

	close(f.release)
	wait(t, first)

	s := l.State()
	assert.Equal(t, StatusLoaded, s.Status)
	assert.Equal(t, int64(7), s.Users[0].ID)
}

func TestLoader_StateReturnsCopy(t *testing.T) {
	l := newLoader(&fakeFetcher{users: []models.RemoteUserRecord{{ID: 1, Name: "a"}}})
	wait(t, l.Activate(context.Background()))

	s := l.State()
	s.Users[0].Name = "mutated"
	assert.Equal(t, "a", l.State().Users[0].Name)
}

func TestLoader_Load(t *testing.T) {
	l := newLoader(&fakeFetcher{err: errors.New("boom")})

	s := l.Load(context.Background())
	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, StatusLoading, l.State().Status)
}

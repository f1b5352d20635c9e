package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patiparn/rodchao/internal/client/notify"
	"github.com/patiparn/rodchao/internal/logging"
	"github.com/patiparn/rodchao/internal/models"
)

// fakeAPI scripts ListCars/DeleteCar results and counts the calls.
type fakeAPI struct {
	mu          sync.Mutex
	listCalls   int
	deleteCalls int

	listFn   func(call int) ([]models.Car, error)
	deleteFn func() error
}

func (f *fakeAPI) ListCars(ctx context.Context, ownerEmail string) ([]models.Car, error) {
	f.mu.Lock()
	f.listCalls++
	call := f.listCalls
	fn := f.listFn
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(call)
}

func (f *fakeAPI) DeleteCar(ctx context.Context, id string, ownerEmail string) error {
	f.mu.Lock()
	f.deleteCalls++
	fn := f.deleteFn
	f.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn()
}

func (f *fakeAPI) VerifyPassword(ctx context.Context, email, password string) (bool, error) {
	return false, nil
}

func (f *fakeAPI) ChangePassword(ctx context.Context, email, current, newPassword string) error {
	return nil
}

func (f *fakeAPI) Close() error { return nil }

func (f *fakeAPI) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.deleteCalls
}

type captured struct {
	kind    notify.Kind
	title   string
	message string
}

type fakeNotifier struct {
	mu    sync.Mutex
	notes []captured
}

func (f *fakeNotifier) Notify(_ context.Context, kind notify.Kind, title, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, captured{kind: kind, title: title, message: message})
}

func (f *fakeNotifier) all() []captured {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]captured(nil), f.notes...)
}

type fakeConfirmer struct {
	answer bool
	err    error
	asked  []string
}

func (f *fakeConfirmer) Confirm(_ context.Context, message string) (bool, error) {
	f.asked = append(f.asked, message)
	return f.answer, f.err
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func newStore(apiClient *fakeAPI, n *fakeNotifier, c *fakeConfirmer) *Store {
	return New(apiClient, n, c, testLogger())
}

func TestReload_EmptyOwnerIsSilentNoop(t *testing.T) {
	apiClient := &fakeAPI{}
	n := &fakeNotifier{}
	s := newStore(apiClient, n, &fakeConfirmer{})

	s.Reload(context.Background(), "")
	s.Reload(context.Background(), "   ")

	lists, _ := apiClient.counts()
	assert.Zero(t, lists, "no request may be issued without an owner identity")
	assert.Empty(t, n.all())

	cars, loading := s.Snapshot()
	assert.Empty(t, cars)
	assert.False(t, loading)
}

func TestReload_ReplacesCollectionWholesale(t *testing.T) {
	apiClient := &fakeAPI{listFn: func(int) ([]models.Car, error) {
		return []models.Car{{ID: "1"}, {ID: "2"}}, nil
	}}
	s := newStore(apiClient, &fakeNotifier{}, &fakeConfirmer{})

	s.Reload(context.Background(), "a@example.com")

	cars, loading := s.Snapshot()
	assert.False(t, loading)
	require.Len(t, cars, 2)
	assert.Equal(t, "1", cars[0].ID)
	assert.Equal(t, "2", cars[1].ID)
}

func TestReload_FailureKeepsPriorCollection(t *testing.T) {
	apiClient := &fakeAPI{listFn: func(call int) ([]models.Car, error) {
		if call == 1 {
			return []models.Car{{ID: "1"}}, nil
		}
		return nil, errors.New("boom")
	}}
	n := &fakeNotifier{}
	s := newStore(apiClient, n, &fakeConfirmer{})

	s.Reload(context.Background(), "a@example.com")
	s.Reload(context.Background(), "a@example.com")

	cars, loading := s.Snapshot()
	assert.False(t, loading, "isLoading must return to false after a failed reload")
	require.Len(t, cars, 1, "failed reload must leave the prior collection visible")
	assert.Equal(t, "1", cars[0].ID)

	notes := n.all()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.KindError, notes[0].kind)
	assert.Equal(t, notify.TitleError, notes[0].title)
}

func TestReload_LoadingFlagDuringFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	apiClient := &fakeAPI{listFn: func(int) ([]models.Car, error) {
		close(started)
		<-release
		return nil, nil
	}}
	s := newStore(apiClient, &fakeNotifier{}, &fakeConfirmer{})

	done := make(chan struct{})
	go func() {
		s.Reload(context.Background(), "a@example.com")
		close(done)
	}()

	<-started
	assert.True(t, s.Loading())

	close(release)
	<-done
	assert.False(t, s.Loading())
}

func TestReload_StaleResultDiscarded(t *testing.T) {
	releaseOld := make(chan struct{})
	oldStarted := make(chan struct{})
	apiClient := &fakeAPI{listFn: func(call int) ([]models.Car, error) {
		if call == 1 {
			close(oldStarted)
			<-releaseOld
			return []models.Car{{ID: "stale"}}, nil
		}
		return []models.Car{{ID: "fresh"}}, nil
	}}
	s := newStore(apiClient, &fakeNotifier{}, &fakeConfirmer{})

	oldDone := make(chan struct{})
	go func() {
		s.Reload(context.Background(), "old@example.com")
		close(oldDone)
	}()
	<-oldStarted

	// Identity changed before the first reload resolved.
	s.Reload(context.Background(), "new@example.com")

	close(releaseOld)
	<-oldDone

	cars, loading := s.Snapshot()
	assert.False(t, loading)
	require.Len(t, cars, 1)
	assert.Equal(t, "fresh", cars[0].ID, "the stale result must not overwrite the newer one")
}

func TestRemove_DeclinedGateHasNoSideEffects(t *testing.T) {
	apiClient := &fakeAPI{listFn: func(int) ([]models.Car, error) {
		return []models.Car{{ID: "7"}}, nil
	}}
	n := &fakeNotifier{}
	gate := &fakeConfirmer{answer: false}
	s := newStore(apiClient, n, gate)

	s.Reload(context.Background(), "a@example.com")
	listsBefore, _ := apiClient.counts()

	s.Remove(context.Background(), "7", "a@example.com")

	lists, deletes := apiClient.counts()
	assert.Equal(t, listsBefore, lists, "declining must not trigger a reload")
	assert.Zero(t, deletes, "declining must not issue a delete request")
	require.Len(t, gate.asked, 1)
	assert.Equal(t, ConfirmDeleteMessage, gate.asked[0])
	assert.Empty(t, n.all(), "declining issues no notification")

	cars, loading := s.Snapshot()
	assert.Len(t, cars, 1)
	assert.False(t, loading)
}

func TestRemove_ConfirmedTriggersExactlyOneReload(t *testing.T) {
	apiClient := &fakeAPI{listFn: func(call int) ([]models.Car, error) {
		if call == 1 {
			return []models.Car{{ID: "7"}, {ID: "8"}}, nil
		}
		return []models.Car{{ID: "8"}}, nil
	}}
	n := &fakeNotifier{}
	s := newStore(apiClient, n, &fakeConfirmer{answer: true})

	s.Reload(context.Background(), "a@example.com")
	s.Remove(context.Background(), "7", "a@example.com")

	lists, deletes := apiClient.counts()
	assert.Equal(t, 2, lists, "a confirmed delete triggers exactly one additional list call")
	assert.Equal(t, 1, deletes)

	cars, _ := s.Snapshot()
	require.Len(t, cars, 1)
	assert.Equal(t, "8", cars[0].ID)

	notes := n.all()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.KindSuccess, notes[0].kind)
}

func TestRemove_DeleteFailureLeavesCollectionUntouched(t *testing.T) {
	apiClient := &fakeAPI{
		listFn:   func(int) ([]models.Car, error) { return []models.Car{{ID: "7"}}, nil },
		deleteFn: func() error { return errors.New("boom") },
	}
	n := &fakeNotifier{}
	s := newStore(apiClient, n, &fakeConfirmer{answer: true})

	s.Reload(context.Background(), "a@example.com")
	s.Remove(context.Background(), "7", "a@example.com")

	lists, deletes := apiClient.counts()
	assert.Equal(t, 1, lists, "a failed delete must not trigger a reload")
	assert.Equal(t, 1, deletes)

	cars, _ := s.Snapshot()
	require.Len(t, cars, 1, "no local row removal without server confirmation")

	notes := n.all()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.KindError, notes[0].kind)
}

func TestClear_InvalidatesInFlightReload(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	apiClient := &fakeAPI{listFn: func(int) ([]models.Car, error) {
		close(started)
		<-release
		return []models.Car{{ID: "late"}}, nil
	}}
	s := newStore(apiClient, &fakeNotifier{}, &fakeConfirmer{})

	done := make(chan struct{})
	go func() {
		s.Reload(context.Background(), "a@example.com")
		close(done)
	}()
	<-started

	s.Clear()
	close(release)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reload did not finish")
	}

	cars, loading := s.Snapshot()
	assert.Empty(t, cars, "a cleared store must not resurrect a late result")
	assert.False(t, loading)
}

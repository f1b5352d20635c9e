// Package store holds the in-memory collection of the signed-in owner's
// rental-car listings. All mutation goes through Reload and Remove; nothing
// else may touch the collection.
package store

import (
	"context"
	"strings"
	"sync"

	"github.com/patiparn/rodchao/internal/client/api"
	"github.com/patiparn/rodchao/internal/client/notify"
	"github.com/patiparn/rodchao/internal/logging"
	"github.com/patiparn/rodchao/internal/models"
)

// ConfirmDeleteMessage is the question put to the Confirmation Gate before
// a listing is deleted.
const ConfirmDeleteMessage = "คุณต้องการลบรถคันนี้ใช่หรือไม่?"

// deletedMessage is the success notification after a confirmed delete.
const deletedMessage = "ลบรถเรียบร้อยแล้ว"

// Confirmer is the blocking yes/no gate in front of destructive actions.
// A negative answer must abort the action with no side effects.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// Store owns the listing collection and its loading flag.
//
// The collection always reflects the last successful list response for the
// current owner: a failed reload or delete leaves it untouched, and no
// listing is removed locally until the server has confirmed the delete and
// a full reload has run. Reloads carry a generation number; when the owner
// identity changes (or a newer reload starts) before an older reload
// resolves, the stale result is discarded instead of applied.
type Store struct {
	apiClient api.Client
	notifier  notify.Notifier
	confirmer Confirmer
	log       logging.Logger

	mu      sync.Mutex
	cars    []models.Car
	loading bool
	gen     uint64
}

func New(apiClient api.Client, notifier notify.Notifier, confirmer Confirmer, log logging.Logger) *Store {
	return &Store{
		apiClient: apiClient,
		notifier:  notifier,
		confirmer: confirmer,
		log:       log,
	}
}

// Snapshot returns a copy of the collection plus the loading flag, taken
// atomically.
func (s *Store) Snapshot() ([]models.Car, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cars := make([]models.Car, len(s.cars))
	copy(cars, s.cars)
	return cars, s.loading
}

// Loading reports whether a reload is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Reload fetches the owner's listings and replaces the collection wholesale.
// An empty owner email short-circuits silently: no request, no notification.
// On failure the previous collection stays visible and the error is turned
// into a user notification.
func (s *Store) Reload(ctx context.Context, ownerEmail string) {
	if strings.TrimSpace(ownerEmail) == "" {
		return
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.mu.Unlock()

	cars, err := s.apiClient.ListCars(ctx, ownerEmail)

	s.mu.Lock()
	if gen != s.gen {
		// A newer reload or an identity change superseded this result.
		s.mu.Unlock()
		s.log.Debug(ctx, "stale reload discarded", "owner", ownerEmail)
		return
	}
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		s.log.Error(ctx, "reload failed", "owner", ownerEmail, "error", err)
		s.notifier.Notify(ctx, notify.KindError, notify.TitleError, api.UserMessage(err))
		return
	}
	s.cars = cars
	s.mu.Unlock()
	s.log.Info(ctx, "reload finished", "owner", ownerEmail, "cars", len(cars))
}

// Remove deletes one listing after the Confirmation Gate approves. The
// collection is never mutated locally: a confirmed, server-acknowledged
// delete triggers a full Reload instead. Declining the gate does nothing
// and notifies nothing.
func (s *Store) Remove(ctx context.Context, id string, ownerEmail string) {
	ok, err := s.confirmer.Confirm(ctx, ConfirmDeleteMessage)
	if err != nil {
		s.log.Error(ctx, "confirmation failed", "error", err)
		return
	}
	if !ok {
		return
	}

	if err := s.apiClient.DeleteCar(ctx, id, ownerEmail); err != nil {
		s.log.Error(ctx, "delete failed", "id", id, "error", err)
		s.notifier.Notify(ctx, notify.KindError, notify.TitleError, api.UserMessage(err))
		return
	}

	s.notifier.Notify(ctx, notify.KindSuccess, notify.TitleSuccess, deletedMessage)
	s.Reload(ctx, ownerEmail)
}

// Clear discards the collection, e.g. when the owning view goes away or the
// user signs out. Any in-flight reload result is invalidated.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.cars = nil
	s.loading = false
}

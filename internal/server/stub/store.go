// Package stub is the development fixture backend for the owner panel: the
// rental API reimplemented over an in-memory account store so the CLI can
// run without the production service.
package stub

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/patiparn/rodchao/internal/models"
)

var (
	ErrUnknownAccount   = errors.New("unknown account")
	ErrCarNotFound      = errors.New("car not found")
	ErrNotOwner         = errors.New("car belongs to another account")
	ErrWrongPassword    = errors.New("wrong password")
	ErrPasswordTooShort = errors.New("password too short")
)

const minPasswordLen = 6

// Account is one registered user with their owned listings.
type Account struct {
	Email        string
	PasswordHash []byte
	Cars         []models.Car
}

// Store keeps every account in memory, guarded by one RWMutex. Listings
// are returned in insertion order.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

func NewStore() *Store {
	return &Store{accounts: make(map[string]*Account)}
}

// AddAccount registers an account with a bcrypt-hashed password.
func (s *Store) AddAccount(email, password string, cars ...models.Car) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[email] = &Account{Email: email, PasswordHash: hash, Cars: cars}
	return nil
}

// CarsByOwner returns the owner's listings in stored order.
func (s *Store) CarsByOwner(email string) ([]models.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[email]
	if !ok {
		return nil, ErrUnknownAccount
	}
	return append([]models.Car(nil), acc.Cars...), nil
}

// DeleteCar removes one listing after re-validating ownership: the id must
// exist and the listing must belong to ownerEmail.
func (s *Store) DeleteCar(id, ownerEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, ok := s.accounts[ownerEmail]
	if !ok {
		return ErrUnknownAccount
	}

	for i, c := range owner.Cars {
		if c.ID == id {
			owner.Cars = append(owner.Cars[:i], owner.Cars[i+1:]...)
			return nil
		}
	}

	// Distinguish "gone" from "someone else's listing".
	for _, acc := range s.accounts {
		for _, c := range acc.Cars {
			if c.ID == id {
				return ErrNotOwner
			}
		}
	}
	return ErrCarNotFound
}

// VerifyPassword reports whether the password matches the stored hash.
// Unknown accounts simply verify negative.
func (s *Store) VerifyPassword(email, password string) bool {
	s.mu.RLock()
	acc, ok := s.accounts[email]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)) == nil
}

// ChangePassword re-checks the current password and stores a new hash.
func (s *Store) ChangePassword(email, current, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return ErrPasswordTooShort
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[email]
	if !ok {
		return ErrUnknownAccount
	}
	if bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(current)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	acc.PasswordHash = hash
	return nil
}

// Seed loads the demo fixture: one owner with two listings covering both
// price units and a pending status, and one owner with nothing yet.
func (s *Store) Seed() error {
	if err := s.AddAccount("somchai@example.com", "password123",
		models.Car{
			ID:          "1",
			Brand:       "Toyota",
			Model:       "Vios",
			Year:        "2020",
			Color:       "ขาว",
			PlateNumber: "กข 1234 กรุงเทพมหานคร",
			EngineSize:  "1.5L",
			FuelType:    "เบนซิน",
			Price:       1200,
			PriceType:   models.PriceTypePerDay,
			Status:      models.StatusApproved,
			Images:      []string{"/uploads/vios-front.jpg", "/uploads/vios-side.jpg"},
		},
		models.Car{
			ID:        "2",
			Brand:     "Honda",
			Model:     "Jazz",
			Year:      "2019",
			Price:     350,
			PriceType: "per_hour",
			Status:    models.StatusPending,
		},
	); err != nil {
		return err
	}
	return s.AddAccount("malee@example.com", "rodchao456")
}

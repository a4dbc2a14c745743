// Package lunch implements the restaurant store and the lunch roll.
//
// Store is the single owner of persisted restaurants and roll history. All operations are
// serialized with a mutex, so two rolls never interleave their read-history, choose and
// record steps.
package lunch

import (
	"context"
	"fmt"
	"html"
	"log"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/lunch/pkg/domain"
	"github.com/umputun/lunch/pkg/repository"
)

//go:generate moq -out mocks/restaurants.go -pkg mocks -skip-ensure -fmt goimports . Restaurants
//go:generate moq -out mocks/selections.go -pkg mocks -skip-ensure -fmt goimports . Selections

// Restaurants is the persistence of restaurant entries
type Restaurants interface {
	GetRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurantsByCategory(ctx context.Context, category string) ([]domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, r domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, name string) error
}

// Selections is the persistence of roll history
type Selections interface {
	GetLastSelection(ctx context.Context) (*domain.Selection, error)
	GetSelections(ctx context.Context) ([]domain.Selection, error)
	RecordSelection(ctx context.Context, name string, at time.Time, keep int) (domain.Selection, error)
}

// Store keeps restaurants and rolls lunch picks
type Store struct {
	restaurants Restaurants
	selections  Selections

	lock     sync.Mutex
	now      func() time.Time
	pick     func(n int) int
	sanitize *bluemonday.Policy
}

// Option customizes Store
type Option func(s *Store)

// WithClock sets time source for recorded selections
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRandom sets a function returning a uniform random int in [0, n)
func WithRandom(pick func(n int) int) Option {
	return func(s *Store) { s.pick = pick }
}

// New makes a store on top of given persistence
func New(restaurants Restaurants, selections Selections, opts ...Option) *Store {
	s := &Store{
		restaurants: restaurants,
		selections:  selections,
		now:         time.Now,
		pick:        rand.IntN,
		sanitize:    bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromRepositories makes a store backed by sqlite repositories
func NewFromRepositories(repos *repository.Repositories, opts ...Option) *Store {
	return New(repos.Restaurant, repos.Selection, opts...)
}

// List returns all restaurants ordered by name
func (s *Store) List(ctx context.Context) ([]domain.Restaurant, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.restaurants.GetRestaurants(ctx)
}

// ListByCategory returns restaurants of the category, compared case-insensitively.
// Unknown category gives an empty list.
func (s *Store) ListByCategory(ctx context.Context, category string) ([]domain.Restaurant, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.restaurants.GetRestaurantsByCategory(ctx, category)
}

// Add creates a restaurant. The name is trimmed and stored as typed, the category normalized.
// Returns domain.ErrInvalidInput for empty name, name with html markup or unknown category and domain.ErrDuplicateName
// if the name is already taken.
func (s *Store) Add(ctx context.Context, name, category string) (domain.Restaurant, error) {
	cleanName := strings.TrimSpace(name)
	if cleanName == "" {
		return domain.Restaurant{}, fmt.Errorf("%w: restaurant name is empty", domain.ErrInvalidInput)
	}
	if s.hasMarkup(cleanName) {
		return domain.Restaurant{}, fmt.Errorf("%w: restaurant name contains markup: %q", domain.ErrInvalidInput, cleanName)
	}
	cat, err := domain.ParseCategory(category)
	if err != nil {
		return domain.Restaurant{}, err
	}

	rest := domain.Restaurant{Name: cleanName, Category: cat}

	s.lock.Lock()
	defer s.lock.Unlock()
	if err := s.restaurants.CreateRestaurant(ctx, rest); err != nil {
		return domain.Restaurant{}, err
	}
	log.Printf("[DEBUG] added restaurant %q (%s)", rest.Name, rest.Category)
	return rest, nil
}

// Delete removes a restaurant by exact name, missing name is not an error.
// History entries of the restaurant are kept.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if err := s.restaurants.DeleteRestaurant(ctx, name); err != nil {
		return err
	}
	log.Printf("[DEBUG] deleted restaurant %q", name)
	return nil
}

// Roll picks a random restaurant of the category and records it in history.
// The previous pick is excluded unless it is the only candidate.
// Returns domain.ErrNoRestaurants if the category has no restaurants, history untouched in this case.
func (s *Store) Roll(ctx context.Context, category string) (domain.Restaurant, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	candidates, err := s.restaurants.GetRestaurantsByCategory(ctx, category)
	if err != nil {
		return domain.Restaurant{}, err
	}
	if len(candidates) == 0 {
		return domain.Restaurant{}, fmt.Errorf("%w: category %q", domain.ErrNoRestaurants, category)
	}

	last, err := s.selections.GetLastSelection(ctx)
	if err != nil {
		return domain.Restaurant{}, err
	}

	eligible := candidates
	if last != nil {
		eligible = make([]domain.Restaurant, 0, len(candidates))
		for _, c := range candidates {
			if c.Name != last.Name {
				eligible = append(eligible, c)
			}
		}
		if len(eligible) == 0 {
			eligible = candidates // only the last pick is available, allow repeat
		}
	}

	chosen := eligible[s.pick(len(eligible))]
	if _, err := s.selections.RecordSelection(ctx, chosen.Name, s.now(), domain.HistoryLimit); err != nil {
		return domain.Restaurant{}, err
	}
	log.Printf("[DEBUG] rolled %q from %d of %d %s restaurants", chosen.Name, len(eligible), len(candidates), category)
	return chosen, nil
}

// Recent returns retained roll history, most recent first
func (s *Store) Recent(ctx context.Context) ([]domain.Selection, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.selections.GetSelections(ctx)
}

// hasMarkup reports if the sanitizer would drop anything from the name.
// Both sides are unescaped, entity encoding alone doesn't count.
func (s *Store) hasMarkup(name string) bool {
	return html.UnescapeString(s.sanitize.Sanitize(name)) != html.UnescapeString(name)
}

// Package store is the in-memory application state container: fields,
// activities, recommendations, grain stock, the auth flag and the AI loading
// flags. Views read from it and dispatch into it; they never keep their own
// authoritative copies.
package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"agrovision/entities"
	"agrovision/pkg/ai/flows"
	"agrovision/pkg/auth/repository"
	"agrovision/pkg/logger"
	"agrovision/pkg/metrics"
	"agrovision/pkg/notify"
	"agrovision/pkg/seed"
	"agrovision/pkg/validation"
)

// AIFlows is the pair of prompt flows the store calls out to.
type AIFlows interface {
	GenerateFieldPlan(ctx context.Context, in flows.FieldPlanInput) (flows.FieldPlanOutput, error)
	GetRecommendations(ctx context.Context, in flows.RecommendationsInput) (flows.RecommendationsOutput, error)
}

type Store struct {
	mu     sync.RWMutex
	state  *state
	manual []entities.Recommendation

	authenticated atomic.Bool
	recsInFlight  atomic.Int32
	planInFlight  atomic.Int32
	flows         AIFlows
	slot          repository.SessionRepository
	notifier      notify.Notifier
	log           *logger.Logger
	metrics       *metrics.Metrics
	now           func() time.Time
	newID            func() string
	placeholderImage string

	subMu   sync.RWMutex
	nextSub int
	subs    map[int]func(Event)
}

type Option func(*Store)

// WithSeed replaces the built-in fixtures.
func WithSeed(d seed.Data) Option {
	return func(s *Store) {
		s.state = newState(d)
		s.manual = append([]entities.Recommendation(nil), d.ManualRecommendations...)
	}
}

func WithFlows(f AIFlows) Option { return func(s *Store) { s.flows = f } }

// WithSessionSlot persists the auth flag in r instead of process memory.
func WithSessionSlot(r repository.SessionRepository) Option {
	return func(s *Store) { s.slot = r }
}

func WithNotifier(n notify.Notifier) Option { return func(s *Store) { s.notifier = n } }

func WithLogger(l *logger.Logger) Option { return func(s *Store) { s.log = l } }

func WithMetrics(m *metrics.Metrics) Option { return func(s *Store) { s.metrics = m } }

// WithClock sets the time source used for event stamps and "current date".
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

func WithIDGenerator(gen func() string) Option { return func(s *Store) { s.newID = gen } }

func WithPlaceholderImage(url string) Option {
	return func(s *Store) {
		if url != "" {
			s.placeholderImage = url
		}
	}
}

func New(opts ...Option) *Store {
	def := seed.Default()
	s := &Store{
		state:            newState(def),
		manual:           def.ManualRecommendations,
		slot:             newMemorySlot(),
		notifier:         notify.Discard,
		log:              logger.Nop(),
		now:              time.Now,
		newID:            uuid.NewString,
		placeholderImage: seed.PlaceholderImage,
		subs:             make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "store")
	return s
}

// update runs fn against a clone of the current state and commits the clone
// only when fn succeeds.
func (s *Store) update(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.clone()
	if err := fn(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

func (s *Store) toast(title, description string) {
	s.notifier.Notify(notify.Toast{Title: title, Description: description, Variant: notify.VariantDefault, At: s.now()})
}

func (s *Store) toastDestructive(title, description string) {
	s.notifier.Notify(notify.Toast{Title: title, Description: description, Variant: notify.VariantDestructive, At: s.now()})
}

func (s *Store) toastError(description string) { s.toastDestructive("Error", description) }

func (s *Store) today() string {
	return s.now().Format(entities.DateLayout)
}

func validate(v any) error {
	if err := validation.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// LoadingState reports which AI operations are in flight.
type LoadingState struct {
	Recommendations bool `json:"recommendations"`
	FieldPlan       bool `json:"fieldPlan"`
}

func (s *Store) Loading() LoadingState {
	return LoadingState{
		Recommendations: s.recsInFlight.Load() > 0,
		FieldPlan:       s.planInFlight.Load() > 0,
	}
}

// beginLoading counts one more call in flight. The flag is announced only
// when the first call starts and when the last one ends.
func (s *Store) beginLoading(inFlight *atomic.Int32) (end func()) {
	if inFlight.Add(1) == 1 {
		s.publish(EventLoadingChanged, "")
	}
	return func() {
		if inFlight.Add(-1) == 0 {
			s.publish(EventLoadingChanged, "")
		}
	}
}

package store

import "time"

type EventKind string

const (
	EventLogin                   EventKind = "auth.login"
	EventLogout                  EventKind = "auth.logout"
	EventFieldAdded              EventKind = "field.added"
	EventFieldUpdated            EventKind = "field.updated"
	EventFieldDeleted            EventKind = "field.deleted"
	EventActivityAdded           EventKind = "activity.added"
	EventRecommendationsReplaced EventKind = "recommendations.replaced"
	EventStockCreated            EventKind = "stock.created"
	EventStockAdded              EventKind = "stock.added"
	EventStockRemoved            EventKind = "stock.removed"
	EventLoadingChanged          EventKind = "loading.changed"
)

// Event announces a committed change. ID names the affected entity when
// there is one.
type Event struct {
	Kind EventKind `json:"kind"`
	ID   string    `json:"id,omitempty"`
	At   time.Time `json:"at"`
}

// Subscribe registers fn for every future event and returns a function that
// removes it. fn runs on the mutating goroutine after the store lock is
// released, so it may read from the store.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) publish(kind EventKind, id string) {
	if kind != EventLoadingChanged {
		s.metrics.IncMutation(string(kind))
	}
	ev := Event{Kind: kind, ID: id, At: s.now()}
	s.subMu.RLock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.RUnlock()
	for _, fn := range fns {
		fn(ev)
	}
}

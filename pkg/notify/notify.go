// Package notify carries user-visible toasts out of the state store.
package notify

import (
	"sync"
	"time"

	"agrovision/pkg/logger"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Toast struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	At          time.Time `json:"at"`
}

type Notifier interface {
	Notify(Toast)
}

// Func adapts a plain function to Notifier.
type Func func(Toast)

func (f Func) Notify(t Toast) { f(t) }

// Discard drops every toast.
var Discard Notifier = Func(func(Toast) {})

type multi []Notifier

func (m multi) Notify(t Toast) {
	for _, n := range m {
		n.Notify(t)
	}
}

// Multi fans a toast out to every non-nil notifier in order.
func Multi(ns ...Notifier) Notifier {
	out := make(multi, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

type logNotifier struct{ log *logger.Logger }

// Log writes every toast to the structured log.
func Log(l *logger.Logger) Notifier { return logNotifier{log: l.With("component", "notify")} }

func (n logNotifier) Notify(t Toast) {
	if t.Variant == VariantDestructive {
		n.log.Warn("toast", "title", t.Title, "description", t.Description)
		return
	}
	n.log.Info("toast", "title", t.Title, "description", t.Description)
}

// Broadcaster delivers toasts to live subscribers such as SSE streams.
type Broadcaster struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(Toast)
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]func(Toast))}
}

func (b *Broadcaster) Notify(t Toast) {
	b.mu.RLock()
	fns := make([]func(Toast), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()
	for _, fn := range fns {
		fn(t)
	}
}

// Subscribe registers fn and returns a function that removes it.
func (b *Broadcaster) Subscribe(fn func(Toast)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Recorder keeps every toast in memory.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

func (r *Recorder) Notify(t Toast) {
	r.mu.Lock()
	r.toasts = append(r.toasts, t)
	r.mu.Unlock()
}

func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Toast(nil), r.toasts...)
}

// Last returns the most recent toast, if any.
func (r *Recorder) Last() (Toast, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.toasts) == 0 {
		return Toast{}, false
	}
	return r.toasts[len(r.toasts)-1], true
}

package ai

import (
	"context"
	"time"
)

// Observer receives one sample per Generate call.
type Observer interface {
	ObserveAI(flow, outcome string, d time.Duration)
}

type observed struct {
	next Client
	obs  Observer
	now  func() time.Time
}

// WithObserver reports the outcome and latency of every call made through c.
func WithObserver(c Client, obs Observer) Client {
	if obs == nil {
		return c
	}
	return &observed{next: c, obs: obs, now: time.Now}
}

func (o *observed) Generate(ctx context.Context, r Request) ([]byte, error) {
	start := o.now()
	out, err := o.next.Generate(ctx, r)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	o.obs.ObserveAI(r.Name, outcome, o.now().Sub(start))
	return out, err
}

package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agrovision/pkg/events/controller"
	"agrovision/pkg/logger"
	"agrovision/pkg/notify"
	"agrovision/pkg/store"
)

// StateSource is the part of the store the stream needs.
type StateSource interface {
	Subscribe(fn func(store.Event)) func()
	Loading() store.LoadingState
}

type ToastSource interface {
	Subscribe(fn func(notify.Toast)) func()
}

const (
	sseState     = "state"
	sseToast     = "toast"
	sseHeartbeat = "heartbeat"
)

type EventsCtrl struct {
	state     StateSource
	toasts    ToastSource
	log       *logger.Logger
	heartbeat time.Duration
	buffer    int
}

var _ controller.EventsController = (*EventsCtrl)(nil)

func New(state StateSource, toasts ToastSource, log *logger.Logger) *EventsCtrl {
	return &EventsCtrl{state: state, toasts: toasts, log: log.With("component", "sse"), heartbeat: 30 * time.Second, buffer: 64}
}

// Status reports the AI loading flags.
func (h *EventsCtrl) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.state.Loading())
}

type frame struct {
	kind string
	data any
}

// Stream pushes store events and toasts as server-sent events until the
// client goes away. A slow client loses frames; publishers never block.
func (h *EventsCtrl) Stream(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	frames := make(chan frame, h.buffer)
	offer := func(f frame) {
		select {
		case frames <- f:
		default:
			h.log.Debug("sse frame dropped", "kind", f.kind)
		}
	}
	unsubState := h.state.Subscribe(func(e store.Event) { offer(frame{sseState, e}) })
	defer unsubState()
	if h.toasts != nil {
		unsubToasts := h.toasts.Subscribe(func(t notify.Toast) { offer(frame{sseToast, t}) })
		defer unsubToasts()
	}

	var id uint64
	if err := h.writeEvent(w, id, "connected", h.state.Loading()); err != nil {
		return nil
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			id++
			if err := h.writeEvent(w, id, sseHeartbeat, map[string]any{}); err != nil {
				h.log.Debug("client disconnected during heartbeat", "error", err)
				return nil
			}
		case f := <-frames:
			id++
			if err := h.writeEvent(w, id, f.kind, f.data); err != nil {
				h.log.Debug("client disconnected during event", "error", err)
				return nil
			}
		}
	}
}

// writeEvent sends one frame. A payload that cannot be encoded is logged
// and skipped; only write failures are returned.
func (h *EventsCtrl) writeEvent(w *echo.Response, id uint64, kind string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		h.log.Warn("sse frame not encodable", "kind", kind, "id", id, "error", err)
		return nil
	}
	if _, err := fmt.Fprintf(w, "event: %s\n", kind); err != nil {
		return fmt.Errorf("write event type: %w", err)
	}
	if id > 0 {
		if _, err := fmt.Fprintf(w, "id: %d\n", id); err != nil {
			return fmt.Errorf("write event id: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", b); err != nil {
		return fmt.Errorf("write event data: %w", err)
	}
	w.Flush()
	return nil
}

package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agrovision/pkg/logger"
)

func TestBroadcasterSubscribe(t *testing.T) {
	b := NewBroadcaster()
	var got []string
	unsub := b.Subscribe(func(t Toast) { got = append(got, t.Title) })

	b.Notify(Toast{Title: "one"})
	unsub()
	unsub()
	b.Notify(Toast{Title: "two"})

	assert.Equal(t, []string{"one"}, got)
}

func TestMultiSkipsNil(t *testing.T) {
	var a, b Recorder
	n := Multi(&a, nil, &b, Log(logger.Nop()))
	n.Notify(Toast{Title: "Field Added", Variant: VariantDefault})
	n.Notify(Toast{Title: "Error", Variant: VariantDestructive})

	assert.Len(t, a.Toasts(), 2)
	assert.Len(t, b.Toasts(), 2)
	last, ok := b.Last()
	assert.True(t, ok)
	assert.Equal(t, VariantDestructive, last.Variant)
}

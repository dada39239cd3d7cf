// Package display fans display-sink notifications out to renderers.
package display

import (
	"sync"

	"timeboard/internal/models"
	"timeboard/internal/timer"
)

const defaultBuffer = 16

// Hub broadcasts frames to subscribers. Publish never blocks: a subscriber
// whose buffer is full misses that frame.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan models.DisplayFrame
	last   map[string]models.DisplayFrame
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[int]chan models.DisplayFrame),
		last: make(map[string]models.DisplayFrame),
	}
}

// Subscribe registers a receiver. The returned cancel func unregisters it
// and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe(buffer int) (<-chan models.DisplayFrame, func()) {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	ch := make(chan models.DisplayFrame, buffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers f to every subscriber without blocking.
func (h *Hub) Publish(f models.DisplayFrame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if f.Type == models.FrameDisplay {
		h.last[f.Source] = f
	}
	for _, ch := range h.subs {
		select {
		case ch <- f:
		default:
		}
	}
}

// Last returns the most recent display frame for source.
func (h *Hub) Last(source string) (models.DisplayFrame, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	f, ok := h.last[source]
	return f, ok
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Sink returns a timer.DisplaySink publishing frames tagged with source.
func (h *Hub) Sink(source string) timer.DisplaySink {
	return timer.DisplayFunc(func(hours, minutes, seconds int) {
		h.Publish(NewFrame(source, hours, minutes, seconds))
	})
}

// AlarmSink returns a timer.AlarmSink publishing an alarm frame.
func (h *Hub) AlarmSink() timer.AlarmSink {
	return timer.AlarmFunc(func() {
		h.Publish(models.DisplayFrame{Type: models.FrameAlarm, Source: models.SourceCountdown})
	})
}

// NewFrame builds a display frame with zero-padded text.
func NewFrame(source string, hours, minutes, seconds int) models.DisplayFrame {
	return models.DisplayFrame{
		Type:    models.FrameDisplay,
		Source:  source,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
		Text:    [3]string{timer.Pad2(hours), timer.Pad2(minutes), timer.Pad2(seconds)},
	}
}

// Alarms fans one expiration out to several sinks; nil entries are skipped.
type Alarms []timer.AlarmSink

func (a Alarms) Expired() {
	for _, s := range a {
		if s != nil {
			s.Expired()
		}
	}
}

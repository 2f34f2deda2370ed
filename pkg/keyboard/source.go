package keyboard

import "sync"

// Source delivers key events in the order they happened. The channel is
// closed when the source has nothing more to deliver.
type Source interface {
	Events() <-chan Event
}

// ScriptSource replays a fixed list of events.
type ScriptSource struct {
	ch chan Event
}

// NewScriptSource returns a source that yields events in order and then
// closes.
func NewScriptSource(events []Event) *ScriptSource {
	ch := make(chan Event, len(events))
	for _, ev := range events {
		ch <- ev
	}
	close(ch)
	return &ScriptSource{ch: ch}
}

// Events implements Source.
func (s *ScriptSource) Events() <-chan Event { return s.ch }

// ChannelSource is a Source fed by Send. It is how an external listener, or
// the terminal UI, hands events to the controller.
type ChannelSource struct {
	ch     chan Event
	mu     sync.RWMutex
	closed bool
}

// NewChannelSource creates a source with the given buffer size.
func NewChannelSource(buffer int) *ChannelSource {
	return &ChannelSource{ch: make(chan Event, buffer)}
}

// Events implements Source.
func (s *ChannelSource) Events() <-chan Event { return s.ch }

// Send queues an event. It blocks while the buffer is full and reports
// false once the source is closed.
func (s *ChannelSource) Send(ev Event) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	s.ch <- ev
	return true
}

// Close ends the stream. It is safe to call more than once.
func (s *ChannelSource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

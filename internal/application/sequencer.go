package application

import "sync"

// sequencer renders asynchronous results in the order their requests were
// issued. Reserve hands out increasing tickets; Complete parks a result until
// every earlier ticket has completed.
type sequencer struct {
	mu       sync.Mutex
	next     uint64
	expected uint64
	pending  map[uint64]func()
}

func newSequencer() *sequencer {
	return &sequencer{pending: make(map[uint64]func())}
}

func (s *sequencer) Reserve() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ticket := s.next
	s.next++
	return ticket
}

// Complete registers the render step for ticket and runs every render step
// that is now in order. Render steps run while the sequencer is locked and
// must not call back into it.
func (s *sequencer) Complete(ticket uint64, render func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[ticket] = render
	for {
		fn, ok := s.pending[s.expected]
		if !ok {
			return
		}
		delete(s.pending, s.expected)
		s.expected++
		if fn != nil {
			fn()
		}
	}
}

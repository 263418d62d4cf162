package input

import (
	"fmt"
	"sync"
)

// Injector hands events to the system input stream. Implementations make a
// single attempt per call and report how many events were accepted.
type Injector interface {
	Inject(events []Input) (int, error)
}

// InjectionError reports an injection that accepted fewer events than given.
type InjectionError struct {
	Sent int
	Want int
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("injected %d of %d input events", e.Sent, e.Want)
}

// Recorder is an Injector that keeps every event it is given. Limit, when
// positive, caps how many events a single call accepts.
type Recorder struct {
	mu     sync.Mutex
	events []Input
	calls  int

	Limit int
}

var _ Injector = (*Recorder)(nil)

// Inject implements Injector.
func (r *Recorder) Inject(events []Input) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	n := len(events)
	if r.Limit > 0 && n > r.Limit {
		n = r.Limit
	}
	r.events = append(r.events, events[:n]...)
	return n, nil
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Input {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Input(nil), r.events...)
}

// Calls returns the number of Inject calls.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

package send

import (
	"fmt"

	"github.com/goKeyStuffer/input"
)

// Typer sends synthesized events through an injector. Each request is
// injected at most once per chunk; short counts are not retried.
type Typer struct {
	Synth    *Synthesizer
	Injector input.Injector
	// ChunkSize splits a request into several Inject calls of at most this
	// many events. Zero sends everything in one call.
	ChunkSize int
}

// Type injects the events for text and returns how many were accepted.
func (t *Typer) Type(text string) (int, error) {
	return t.inject(t.Synth.Text(text))
}

// Key injects one press or release of the key called name.
func (t *Typer) Key(name string, keyDown bool) error {
	ev, err := t.Synth.Key(name, keyDown)
	if err != nil {
		return err
	}
	_, err = t.inject([]input.Input{ev})
	return err
}

// Tap injects a press and release of the key called name in one call.
func (t *Typer) Tap(name string) error {
	down, err := t.Synth.Key(name, true)
	if err != nil {
		return err
	}
	up, _ := t.Synth.Key(name, false)
	_, err = t.inject([]input.Input{down, up})
	return err
}

func (t *Typer) inject(events []input.Input) (int, error) {
	size := t.ChunkSize
	if size <= 0 {
		size = len(events)
	}
	var sent int
	for start := 0; start < len(events); start += size {
		end := min(start+size, len(events))
		n, err := t.Injector.Inject(events[start:end])
		sent += n
		if err != nil {
			return sent, fmt.Errorf("injecting events %d-%d: %w", start, end, err)
		}
		if sent != end {
			return sent, &input.InjectionError{Sent: sent, Want: len(events)}
		}
	}
	return sent, nil
}

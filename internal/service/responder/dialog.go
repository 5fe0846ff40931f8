package responder

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

// DefaultThinkingDelay is how long the companion "thinks" before answering.
const DefaultThinkingDelay = 1500 * time.Millisecond

// Dialog is the mood check-in conversation:
//
//	Idle -> AwaitingInput -> Thinking -> ShowingResponse
//
// ShowingResponse is terminal until Close or the next Open. All methods are
// safe for concurrent use.
type Dialog struct {
	clock     clockwork.Clock
	delay     time.Duration
	responder *CheckinResponder

	mu        sync.Mutex
	state     domain.CheckinState
	prompt    domain.CheckinPrompt
	reply     string
	sentiment domain.Sentiment

	// gen invalidates a scheduled answer once the dialog is reopened or closed.
	gen     uint64
	timer   clockwork.Timer
	pending chan struct{}
}

func NewDialog(clock clockwork.Clock, delay time.Duration, responder *CheckinResponder) *Dialog {
	return &Dialog{
		clock:     clock,
		delay:     delay,
		responder: responder,
		state:     domain.CheckinIdle,
	}
}

// Open shows prompt and waits for the user's answer. An open dialog is
// replaced and any pending answer is dropped.
func (d *Dialog) Open(prompt domain.CheckinPrompt) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.resetLocked()
	d.state = domain.CheckinAwaitingInput
	d.prompt = prompt
}

// Submit moves the dialog to Thinking and schedules the answer after the
// thinking delay. The returned channel is closed once the dialog has left
// Thinking, either with an answer or because it was closed.
//
// Blank input leaves the state unchanged and returns a validation error.
// Submitting outside AwaitingInput returns ErrConflict.
func (d *Dialog) Submit(text string) (<-chan struct{}, error) {
	text = strings.TrimSpace(text)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != domain.CheckinAwaitingInput {
		return nil, fmt.Errorf("check-in is %s: %w", d.state, domain.ErrConflict)
	}
	if text == "" {
		return nil, domain.NewValidationError("response", "required")
	}

	d.state = domain.CheckinThinking
	gen := d.gen
	done := make(chan struct{})
	d.pending = done
	d.timer = d.clock.AfterFunc(d.delay, func() { d.answer(gen, text) })

	return done, nil
}

// Close hides the dialog from any state.
func (d *Dialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.resetLocked()
}

// Snapshot returns the current dialog view.
func (d *Dialog) Snapshot() domain.Checkin {
	d.mu.Lock()
	defer d.mu.Unlock()

	return domain.Checkin{
		State:     d.state,
		Prompt:    d.prompt,
		Reply:     d.reply,
		Sentiment: d.sentiment,
	}
}

func (d *Dialog) answer(gen uint64, text string) {
	sentiment, reply := d.responder.Reply(text)

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.gen || d.state != domain.CheckinThinking {
		return
	}
	d.state = domain.CheckinShowingResponse
	d.reply = reply
	d.sentiment = sentiment
	d.timer = nil
	close(d.pending)
	d.pending = nil
}

func (d *Dialog) resetLocked() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.pending != nil {
		close(d.pending)
		d.pending = nil
	}
	d.state = domain.CheckinIdle
	d.prompt = domain.CheckinPrompt{}
	d.reply = ""
	d.sentiment = ""
}

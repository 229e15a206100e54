package effects

import (
	"math"
	"sync"
	"time"
)

const (
	TypewriterStart = time.Second
	TypewriterStep  = 100 * time.Millisecond

	DefaultScrollDebounce = 250 * time.Millisecond
)

// Typewriter reveals text one character at a time.
type Typewriter struct {
	runes []rune
}

func NewTypewriter(text string) Typewriter {
	return Typewriter{runes: []rune(text)}
}

// Frames returns the text after each typed character; the last frame is the
// full text.
func (tw Typewriter) Frames() []string {
	out := make([]string, len(tw.runes))
	for i := range tw.runes {
		out[i] = string(tw.runes[:i+1])
	}
	return out
}

// Delay is the time from page ready until frame i is shown.
func (tw Typewriter) Delay(i int) time.Duration {
	return TypewriterStart + time.Duration(i)*TypewriterStep
}

// Debouncer runs fn once no call to Trigger has happened for wait. Each
// Trigger cancels the pending run and schedules a new one.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

func NewDebouncer(wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = DefaultScrollDebounce
	}
	return &Debouncer{wait: wait}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Stop drops any pending run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// ScrollMetrics is what the page reports after scrolling settles.
type ScrollMetrics struct {
	ScrollY        float64 `json:"scrollY"`
	WindowHeight   float64 `json:"windowHeight"`
	DocumentHeight float64 `json:"documentHeight"`
}

// Percent is how far down the document the viewport is, rounded.
func (m ScrollMetrics) Percent() int {
	span := m.DocumentHeight - m.WindowHeight
	if span <= 0 {
		return 0
	}
	return int(math.Round(m.ScrollY / span * 100))
}

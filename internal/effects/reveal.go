package effects

import (
	"context"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/eventlog"
)

// DefaultRevealThreshold is the intersection ratio that starts an animation.
const DefaultRevealThreshold = 0.1

// StaggerStep delays each child of a revealed group.
const StaggerStep = 100 * time.Millisecond

// PlayState is the CSS animation-play-state of an observed element.
type PlayState string

const (
	Paused  PlayState = "paused"
	Running PlayState = "running"
)

// Stagger is the start delay of one child of a revealed group.
type Stagger struct {
	ID    string        `json:"id"`
	Delay time.Duration `json:"delay"`
}

// RevealObserver flips observed elements from paused to running the first
// time they become visible enough. Elements never go back to paused.
type RevealObserver struct {
	mu        sync.Mutex
	threshold float64
	states    map[string]PlayState
	groups    map[string][]string

	events *eventlog.Logger
}

func NewRevealObserver(threshold float64, events *eventlog.Logger) *RevealObserver {
	if threshold <= 0 {
		threshold = DefaultRevealThreshold
	}
	return &RevealObserver{
		threshold: threshold,
		states:    make(map[string]PlayState),
		groups:    make(map[string][]string),
		events:    events,
	}
}

// Observe registers an element in the paused state. Re-observing a revealed
// element does not pause it again.
func (o *RevealObserver) Observe(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.states[id]; !ok {
		o.states[id] = Paused
	}
}

// ObserveGroup registers a container whose children start one after another
// when the container is revealed.
func (o *RevealObserver) ObserveGroup(id string, children []string) {
	o.mu.Lock()
	o.groups[id] = append([]string(nil), children...)
	o.mu.Unlock()

	o.Observe(id)
	for _, c := range children {
		o.Observe(c)
	}
}

// Reset observes id again from paused. It is used when the element is
// rendered anew, so it has to be revealed again.
func (o *RevealObserver) Reset(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.states[id] = Paused
}

// Forget stops observing id.
func (o *RevealObserver) Forget(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.states, id)
	delete(o.groups, id)
}

// ResetAll pauses every observed element, as on a fresh page load.
func (o *RevealObserver) ResetAll() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for id := range o.states {
		o.states[id] = Paused
	}
}

// State returns the play state of id and whether it is observed.
func (o *RevealObserver) State(id string) (PlayState, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	s, ok := o.states[id]
	return s, ok
}

// Intersect reports a new intersection ratio for id. It returns true only on
// the call that reveals the element, along with the stagger schedule of its
// children when id is a group.
func (o *RevealObserver) Intersect(ctx context.Context, id string, ratio float64) (bool, []Stagger) {
	o.mu.Lock()
	state, ok := o.states[id]
	if !ok || state == Running || ratio <= o.threshold {
		o.mu.Unlock()
		return false, nil
	}
	o.states[id] = Running

	var staggered []Stagger
	for i, child := range o.groups[id] {
		o.states[child] = Running
		staggered = append(staggered, Stagger{ID: child, Delay: time.Duration(i) * StaggerStep})
	}
	o.mu.Unlock()

	o.events.LogEvent(ctx, eventlog.Scroll, map[string]any{
		"elementVisible":    id,
		"intersectionRatio": ratio,
	})
	return true, staggered
}

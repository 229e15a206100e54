// Package effects models the decorative behaviours of the portfolio page:
// the hero carousel, scroll reveals, the particle background and pointer
// driven transforms. None of them hold durable state.
package effects

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/eventlog"
)

var ErrSlideOutOfRange = errors.New("slide out of range")

// Slide is one hero panel.
type Slide struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Image    string `yaml:"image" json:"image"`
}

// SlideView is a slide with its active flag, ready for a template.
type SlideView struct {
	Number int
	Slide
	Active bool
}

// Carousel cycles through slides, one-based. An interval timer advances it
// until it is paused.
type Carousel struct {
	mu       sync.Mutex
	slides   []Slide
	current  int
	interval time.Duration
	stop     chan struct{}

	events *eventlog.Logger
}

// NewCarousel returns a carousel showing slide 1. It does not start the
// timer.
func NewCarousel(slides []Slide, interval time.Duration, events *eventlog.Logger) *Carousel {
	return &Carousel{slides: slides, current: 1, interval: interval, events: events}
}

func (c *Carousel) Total() int { return len(c.slides) }

// Current returns the active slide number.
func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Show makes slide n active and every other slide and dot inactive.
func (c *Carousel) Show(ctx context.Context, n int) error {
	c.mu.Lock()
	if n < 1 || n > len(c.slides) {
		c.mu.Unlock()
		return fmt.Errorf("slide %d of %d: %w", n, len(c.slides), ErrSlideOutOfRange)
	}
	c.current = n
	title := c.slides[n-1].Title
	c.mu.Unlock()

	c.events.LogEvent(ctx, eventlog.SliderChange, map[string]any{
		"slideNumber":  n,
		"slideContent": title,
	})
	return nil
}

// Next advances to the following slide, wrapping from the last to the first.
func (c *Carousel) Next(ctx context.Context) int {
	c.mu.Lock()
	if len(c.slides) == 0 {
		c.mu.Unlock()
		return 0
	}
	n := c.current + 1
	if c.current >= len(c.slides) {
		n = 1
	}
	c.mu.Unlock()

	// n is always in range here.
	_ = c.Show(ctx, n)
	return n
}

// Views returns every slide with its active flag. Dots share the same flags.
func (c *Carousel) Views() []SlideView {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]SlideView, len(c.slides))
	for i, s := range c.slides {
		out[i] = SlideView{Number: i + 1, Slide: s, Active: i+1 == c.current}
	}
	return out
}

// Start arms the auto-advance timer. Calling Start while running is a no-op.
func (c *Carousel) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil || c.interval <= 0 {
		return
	}
	stop := make(chan struct{})
	c.stop = stop

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Next(ctx)
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels the auto-advance timer.
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

// Running reports whether the timer is armed.
func (c *Carousel) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

// Pause stops auto-advance while the pointer is over the slider.
func (c *Carousel) Pause(ctx context.Context, reason string) {
	c.Stop()
	c.events.LogEvent(ctx, eventlog.SliderChange, map[string]any{"action": "paused", "reason": reason})
}

// Resume re-arms auto-advance once the pointer leaves.
func (c *Carousel) Resume(ctx context.Context, reason string) {
	c.Start(ctx)
	c.events.LogEvent(ctx, eventlog.SliderChange, map[string]any{"action": "resumed", "reason": reason})
}

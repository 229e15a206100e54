package web

import (
	"context"
	"fmt"

	"github.com/Zachkp/portfolio/internal/eventlog"
)

var animationFeatures = []string{"particles", "magnetic_buttons", "parallax", "typing_effect", "ripple", "3d_tilt", "morphing_bg"}

// revealSections are the page sections that fade in on scroll.
var revealSections = []string{"about", "projects", "education", "contact"}

// Boot restores saved state and starts the page effects, in page-ready order.
func (s *Server) Boot(ctx context.Context) {
	s.Events.LogEvent(ctx, eventlog.PageLoad, map[string]any{"status": "init"})

	s.Education.Hydrate(ctx)
	s.Events.LogEvent(ctx, eventlog.EducationAction, map[string]any{"action": "initialize"})

	for _, id := range revealSections {
		s.Reveal.Observe(id)
	}
	s.observeCards(len(s.Education.Records()))
	skills := make([]string, len(s.Site.Skills))
	for i := range s.Site.Skills {
		skills[i] = fmt.Sprintf("skill-%d", i)
	}
	s.Reveal.ObserveGroup("skills", skills)

	if s.Carousel.Total() > 0 {
		_ = s.Carousel.Show(ctx, 1)
	}
	s.Carousel.Start(s.ctx)

	s.Events.LogEvent(ctx, eventlog.EnhancedAnimations, map[string]any{
		"status":   "initialized",
		"features": animationFeatures,
	})
	s.Events.LogEvent(ctx, eventlog.PageLoad, map[string]any{
		"status":   "dom_ready",
		"features": "slider,form,map,logging",
	})
}

// Shutdown cancels every timer the page effects own.
func (s *Server) Shutdown() {
	s.Carousel.Stop()
	s.Particles.Stop()
	s.Scroll.Stop()
}

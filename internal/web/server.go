package web

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/education"
	"github.com/Zachkp/portfolio/internal/effects"
	"github.com/Zachkp/portfolio/internal/eventlog"
)

// Deps are the components the server wires to HTTP.
type Deps struct {
	Site      *content.Site
	Events    *eventlog.Logger
	Education *education.Store
	Carousel  *effects.Carousel
	Reveal    *effects.RevealObserver
	Particles *effects.ParticlePool
	Sparkles  *effects.Sparkles
	Scroll    *effects.Debouncer
	Logger    *zap.Logger

	// TemplateGlob defaults to "templates/*".
	TemplateGlob string
	StaticDir    string
	ImagesDir    string
}

// Server serves the portfolio page and the endpoints its scripts call.
type Server struct {
	Deps
	// ctx outlives requests; timers started from handlers use it.
	ctx    context.Context
	engine *gin.Engine
}

// New builds the gin engine. ctx bounds background work such as the
// carousel timer.
func New(ctx context.Context, d Deps) *Server {
	if d.TemplateGlob == "" {
		d.TemplateGlob = "templates/*"
	}
	s := &Server{Deps: d, ctx: ctx}

	r := gin.New()
	r.Use(requestLogger(d.Logger), s.recovery(), s.pageViews())
	r.LoadHTMLGlob(d.TemplateGlob)
	if d.StaticDir != "" {
		r.Static("/static", d.StaticDir)
	}
	if d.ImagesDir != "" {
		r.Static("/images", d.ImagesDir)
	}

	r.GET("/", s.home)

	hero := r.Group("/hero")
	hero.GET("", s.heroFragment)
	hero.POST("/next", s.heroNext)
	hero.POST("/slides/:n", s.heroShow)
	hero.POST("/pause", s.heroPause)
	hero.POST("/resume", s.heroResume)

	edu := r.Group("/education")
	edu.GET("/cards", s.educationCards)
	edu.GET("/new", s.educationNew)
	edu.GET("/:index/edit", s.educationEdit)
	edu.POST("", s.educationSubmit)
	edu.POST("/cancel", s.educationCancel)
	edu.DELETE("/:index", s.educationDelete)

	r.POST("/contact", s.contact)

	api := r.Group("/api")
	api.POST("/events", s.ingestEvent)
	api.POST("/errors", s.clientError)
	api.POST("/location", s.location)
	api.POST("/reveal", s.reveal)
	api.POST("/scroll", s.scroll)
	api.GET("/particles", s.particles)
	api.GET("/sparkles", s.sparkles)
	api.POST("/transform", s.transform)
	api.GET("/logs", s.logs)
	api.GET("/logs/export", s.exportLogs)

	s.engine = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// home renders the whole page. A page load starts over: any form left open
// by a previous load is closed and every section is revealed again.
func (s *Server) home(c *gin.Context) {
	if s.Education.FormOpen() {
		s.Education.Cancel(c.Request.Context())
	}
	records := s.Education.Records()
	cards, err := education.CardsHTML(records)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.Reveal.ResetAll()
	s.observeCards(len(records))
	c.HTML(http.StatusOK, "index.html", gin.H{
		"site":      s.Site,
		"slides":    s.Carousel.Views(),
		"cards":     cards,
		"particles": s.Particles.Snapshot(),
		"typing":    effects.NewTypewriter(s.Site.Name).Frames(),
	})
}

// fail answers with a 500 and records the failure.
func (s *Server) fail(c *gin.Context, err error) {
	s.Logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.String(http.StatusInternalServerError, "Something went wrong")
}

// pageViews logs a page_load for every page request. Fragment, asset and
// API requests are skipped, and DNT is respected.
func (s *Server) pageViews() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet ||
			strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/api/") ||
			strings.HasPrefix(path, "/hero") ||
			strings.HasPrefix(path, "/education/") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		s.Events.LogEvent(c.Request.Context(), eventlog.PageLoad, map[string]any{
			"status":    "page_view",
			"path":      path,
			"userAgent": c.GetHeader("User-Agent"),
		})
		c.Next()
	}
}

// recovery turns a handler panic into an error entry and a 500.
func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.Events.LogEvent(c.Request.Context(), eventlog.Error, map[string]any{
			"type":    "panic",
			"message": fmt.Sprint(recovered),
			"path":    c.Request.URL.Path,
		})
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()))
	}
}

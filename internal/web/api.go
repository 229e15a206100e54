package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/effects"
	"github.com/Zachkp/portfolio/internal/eventlog"
)

type eventRequest struct {
	EventType string         `json:"eventType" binding:"required"`
	Data      map[string]any `json:"data"`
}

// ingestEvent records an event observed by the page script: navigation,
// skill and button clicks, map interaction.
func (s *Server) ingestEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.Events.LogEvent(c.Request.Context(), req.EventType, req.Data)
	c.Status(http.StatusAccepted)
}

type clientErrorRequest struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Lineno   int    `json:"lineno"`
	Colno    int    `json:"colno"`
	Reason   any    `json:"reason"`
}

// clientError records uncaught script errors and unhandled rejections.
func (s *Server) clientError(c *gin.Context) {
	var req clientErrorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data := map[string]any{}
	if req.Type == "unhandled_promise_rejection" {
		data["type"] = req.Type
		data["reason"] = req.Reason
	} else {
		data["message"] = req.Message
		data["filename"] = req.Filename
		data["lineno"] = req.Lineno
		data["colno"] = req.Colno
	}
	s.Events.LogEvent(c.Request.Context(), eventlog.Error, data)
	c.Status(http.StatusAccepted)
}

type locationRequest struct {
	Available  bool   `json:"available"`
	Permission string `json:"permission"`
}

// location logs the geolocation permission state. Nothing acts on it.
func (s *Server) location(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data := map[string]any{"available": req.Available}
	if req.Available {
		data["permission"] = req.Permission
	} else {
		data["reason"] = "not_supported"
	}
	s.Events.LogEvent(c.Request.Context(), eventlog.LocationAccess, data)
	c.Status(http.StatusAccepted)
}

type revealRequest struct {
	ID    string  `json:"id" binding:"required"`
	Ratio float64 `json:"ratio"`
}

func (s *Server) reveal(c *gin.Context) {
	var req revealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	revealed, stagger := s.Reveal.Intersect(c.Request.Context(), req.ID, req.Ratio)
	state, _ := s.Reveal.State(req.ID)
	resp := gin.H{"revealed": revealed, "state": state}
	if len(stagger) > 0 {
		delays := make([]gin.H, len(stagger))
		for i, st := range stagger {
			delays[i] = gin.H{"id": st.ID, "delayMs": st.Delay.Milliseconds()}
		}
		resp["stagger"] = delays
	}
	c.JSON(http.StatusOK, resp)
}

// scroll reports settle-time scroll metrics. Bursts are collapsed into one
// event by the debouncer.
func (s *Server) scroll(c *gin.Context) {
	var m effects.ScrollMetrics
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.Scroll.Trigger(func() {
		s.Events.LogEvent(s.ctx, eventlog.Scroll, map[string]any{
			"scrollY":        m.ScrollY,
			"scrollPercent":  m.Percent(),
			"windowHeight":   m.WindowHeight,
			"documentHeight": m.DocumentHeight,
		})
	})
	c.JSON(http.StatusAccepted, gin.H{"parallax": effects.Parallax(m.ScrollY)})
}

func (s *Server) particles(c *gin.Context) {
	c.JSON(http.StatusOK, s.Particles.Snapshot())
}

func (s *Server) sparkles(c *gin.Context) {
	x, errX := strconv.ParseFloat(c.Query("x"), 64)
	y, errY := strconv.ParseFloat(c.Query("y"), 64)
	if errX != nil || errY != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "x and y are required numbers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"lifetimeMs": effects.SparkleLifetime.Milliseconds(),
		"sparkles":   s.Sparkles.Burst(x, y),
	})
}

type transformRequest struct {
	Kind    string       `json:"kind" binding:"required,oneof=tilt magnetic parallax"`
	Rect    effects.Rect `json:"rect"`
	ClientX float64      `json:"clientX"`
	ClientY float64      `json:"clientY"`
	ScrollY float64      `json:"scrollY"`
	Leave   bool         `json:"leave"`
}

func (s *Server) transform(c *gin.Context) {
	var req transformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var out string
	switch req.Kind {
	case "tilt":
		out = effects.TiltReset
		if !req.Leave {
			out = effects.Tilt(req.Rect, req.ClientX, req.ClientY)
		}
	case "magnetic":
		out = effects.MagneticReset
		if !req.Leave {
			out = effects.Magnetic(req.Rect, req.ClientX, req.ClientY)
		}
	case "parallax":
		out = effects.Parallax(req.ScrollY)
	}
	c.JSON(http.StatusOK, gin.H{"transform": out})
}

func (s *Server) logs(c *gin.Context) {
	c.JSON(http.StatusOK, s.Events.Logs())
}

// exportLogs downloads the buffer as pretty JSON.
func (s *Server) exportLogs(c *gin.Context) {
	out, err := s.Events.Export()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=portfolio-logs.json")
	c.Data(http.StatusOK, "application/json", []byte(out))
}

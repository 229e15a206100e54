package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/effects"
)

func (s *Server) renderHero(c *gin.Context) {
	c.HTML(http.StatusOK, "hero.html", gin.H{
		"slides": s.Carousel.Views(),
	})
}

func (s *Server) heroFragment(c *gin.Context) {
	s.renderHero(c)
}

func (s *Server) heroNext(c *gin.Context) {
	s.Carousel.Next(c.Request.Context())
	s.renderHero(c)
}

func (s *Server) heroShow(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		c.String(http.StatusBadRequest, "slide must be a number")
		return
	}
	if err := s.Carousel.Show(c.Request.Context(), n); err != nil {
		if errors.Is(err, effects.ErrSlideOutOfRange) {
			c.String(http.StatusNotFound, err.Error())
			return
		}
		s.fail(c, err)
		return
	}
	s.renderHero(c)
}

func (s *Server) heroPause(c *gin.Context) {
	s.Carousel.Pause(c.Request.Context(), "hover")
	c.Status(http.StatusNoContent)
}

// heroResume re-arms the timer on the server context; the request context
// ends with the response.
func (s *Server) heroResume(c *gin.Context) {
	s.Carousel.Resume(s.ctx, "hover_end")
	c.Status(http.StatusNoContent)
}

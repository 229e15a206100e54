package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Zachkp/portfolio/internal/education"
)

func cardRevealID(i int) string { return fmt.Sprintf("education-%d", i) }

// observeCards registers n freshly rendered cards with the reveal observer.
// Card ids are positional, so each render starts them paused, and the id
// left over after a delete is dropped.
func (s *Server) observeCards(n int) {
	for i := 0; i < n; i++ {
		s.Reveal.Reset(cardRevealID(i))
	}
	s.Reveal.Forget(cardRevealID(n))
}

// writeCards answers with the rendered card list.
func (s *Server) writeCards(c *gin.Context, status int) {
	records := s.Education.Records()
	var buf bytes.Buffer
	if err := education.RenderCards(&buf, records); err != nil {
		s.fail(c, err)
		return
	}
	s.observeCards(len(records))
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) writeForm(c *gin.Context, h education.FormHandle) {
	var buf bytes.Buffer
	if err := education.RenderForm(&buf, h); err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// educationError maps store errors to status codes.
func (s *Server) educationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, education.ErrNotFound):
		c.String(http.StatusNotFound, "Education entry not found")
	case errors.Is(err, education.ErrEditInProgress):
		c.String(http.StatusConflict, "Finish or cancel the open edit first")
	case errors.Is(err, education.ErrStaleForm):
		c.String(http.StatusConflict, "This form was closed, please open it again")
	case errors.As(err, &verrs):
		c.String(http.StatusUnprocessableEntity, verrs.Error())
	default:
		s.fail(c, err)
	}
}

func indexParam(c *gin.Context) (int, bool) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.String(http.StatusBadRequest, "index must be a number")
		return 0, false
	}
	return i, true
}

func (s *Server) educationCards(c *gin.Context) {
	s.writeCards(c, http.StatusOK)
}

func (s *Server) educationNew(c *gin.Context) {
	h, err := s.Education.OpenNew(c.Request.Context())
	if err != nil {
		s.educationError(c, err)
		return
	}
	s.writeForm(c, h)
}

func (s *Server) educationEdit(c *gin.Context) {
	i, ok := indexParam(c)
	if !ok {
		return
	}
	h, err := s.Education.StartEdit(c.Request.Context(), i)
	if err != nil {
		s.educationError(c, err)
		return
	}
	s.writeForm(c, h)
}

func (s *Server) educationSubmit(c *gin.Context) {
	var rec education.Record
	if err := c.ShouldBind(&rec); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}
	res, err := s.Education.Submit(c.Request.Context(), c.PostForm("form_id"), rec)
	if err != nil {
		s.educationError(c, err)
		return
	}
	// Tells the page to drop the open form.
	c.Header("HX-Trigger", "educationFormClosed")
	status := http.StatusCreated
	if res.Updated {
		status = http.StatusOK
	}
	s.writeCards(c, status)
}

func (s *Server) educationCancel(c *gin.Context) {
	s.Education.Cancel(c.Request.Context())
	c.Status(http.StatusOK)
}

// educationDelete removes a card. The page asks for confirmation with
// hx-confirm and only then sends confirm=true.
func (s *Server) educationDelete(c *gin.Context) {
	i, ok := indexParam(c)
	if !ok {
		return
	}
	confirmed := c.Query("confirm") == "true"
	_, err := s.Education.Delete(c.Request.Context(), i, education.ConfirmFunc(func(education.Record) bool {
		return confirmed
	}))
	if err != nil {
		s.educationError(c, err)
		return
	}
	s.writeCards(c, http.StatusOK)
}

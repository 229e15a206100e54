package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/eventlog"
)

// contact accepts the contact form. Nothing is sent anywhere: the submission
// is only recorded, then the page resets the form.
func (s *Server) contact(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.HTML(http.StatusBadRequest, "contact-error.html", gin.H{
			"error": "Sorry, that message could not be read. Please try again.",
		})
		return
	}

	fields := make([]string, 0, len(c.Request.PostForm))
	for _, k := range []string{"name", "email", "subject", "message"} {
		if _, ok := c.Request.PostForm[k]; ok {
			fields = append(fields, k)
		}
	}
	ctx := c.Request.Context()
	s.Events.LogEvent(ctx, eventlog.FormSubmit, map[string]any{
		"formType":      "contact",
		"fields":        fields,
		"messageLength": len([]rune(c.PostForm("message"))),
	})

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I will get back to you soon.",
	})
	s.Events.LogEvent(ctx, eventlog.FormSubmit, map[string]any{"status": "success", "action": "form_reset"})
}

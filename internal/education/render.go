package education

import (
	"bytes"
	"html/template"
	"io"
)

const cardTemplates = `
{{define "card"}}<div class="card education-card" id="education-{{.Index}}" data-reveal="education-{{.Index}}">
  <div class="card-header">
    <h3>{{.Record.Degree}}</h3>
    <button class="edit-btn" hx-get="/education/{{.Index}}/edit" hx-target="#education-form-slot" hx-swap="innerHTML">✏️</button>
    <button class="delete-btn" hx-delete="/education/{{.Index}}?confirm=true" hx-confirm="Are you sure you want to delete this education entry?" hx-target="#education-container" hx-swap="innerHTML">🗑️</button>
  </div>
  <p>{{.Record.InstitutionLine}}</p>
  <p>{{.Record.Grade}}</p>
  {{- if .Record.Description}}
  <p>{{.Record.Description}}</p>
  {{- end}}
</div>
{{end}}

{{define "cards"}}{{range $i, $r := .}}{{template "card" (card $i $r)}}{{end}}{{end}}

{{define "form"}}<div class="education-form" id="education-form-active">
  <form class="education-form-content" hx-post="/education" hx-target="#education-container" hx-swap="innerHTML">
    <input type="hidden" name="form_id" value="{{.ID}}">
    <input name="degree" placeholder="Degree" value="{{.Record.Degree}}" required autofocus>
    <input name="institution" placeholder="Institution" value="{{.Record.Institution}}" required>
    <input name="duration" placeholder="Duration" value="{{.Record.Duration}}" required>
    <input name="grade" placeholder="Grade" value="{{.Record.Grade}}" required>
    <textarea name="description" placeholder="Description">{{.Record.Description}}</textarea>
    <button type="submit" class="btn">{{if .IsEdit}}Update{{else}}Add{{end}}</button>
    <button type="button" class="btn btn-secondary" hx-post="/education/cancel" hx-target="#education-form-slot" hx-swap="innerHTML">Cancel</button>
  </form>
</div>
{{end}}
`

type cardView struct {
	Index  int
	Record Record
}

var templates = template.Must(template.New("education").Funcs(template.FuncMap{
	"card": func(i int, r Record) cardView { return cardView{Index: i, Record: r} },
}).Parse(cardTemplates))

// RenderCards writes one card per record, in order.
func RenderCards(w io.Writer, records []Record) error {
	return templates.ExecuteTemplate(w, "cards", records)
}

// RenderForm writes the add/edit form for h.
func RenderForm(w io.Writer, h FormHandle) error {
	return templates.ExecuteTemplate(w, "form", h)
}

// CardsHTML renders the cards for embedding in a page template.
func CardsHTML(records []Record) (template.HTML, error) {
	var buf bytes.Buffer
	if err := RenderCards(&buf, records); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

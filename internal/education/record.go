package education

import (
	"github.com/go-playground/validator/v10"
)

// Record is one entry of the education section.
type Record struct {
	Degree      string `json:"degree" yaml:"degree" form:"degree" validate:"required,max=200"`
	Institution string `json:"institution" yaml:"institution" form:"institution" validate:"required,max=200"`
	Duration    string `json:"duration" yaml:"duration" form:"duration" validate:"required,max=100"`
	Grade       string `json:"grade" yaml:"grade" form:"grade" validate:"required,max=100"`
	Description string `json:"description" yaml:"description" form:"description" validate:"max=2000"`
}

// InstitutionLine is the second line of a rendered card.
func (r Record) InstitutionLine() string {
	return r.Institution + " (" + r.Duration + ")"
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the form constraints of a submitted record.
func (r Record) Validate() error {
	return validate.Struct(r)
}

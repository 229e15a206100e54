package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/education"
	"github.com/Zachkp/portfolio/internal/effects"
)

// Site is the static copy of the portfolio page.
type Site struct {
	Name      string             `yaml:"name"`
	Location  string             `yaml:"location"`
	AboutMe   string             `yaml:"about"`
	Slides    []effects.Slide    `yaml:"slides"`
	Skills    []string           `yaml:"skills"`
	Projects  []Project          `yaml:"projects"`
	Education []education.Record `yaml:"education"`
}

type Project struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

// Load reads the site copy from a YAML file. A missing file yields Default.
// Sections left out of the file keep their default content.
func Load(path string) (*Site, error) {
	site := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return site, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("parse content %s: %w", path, err)
	}
	if len(site.Slides) == 0 {
		return nil, fmt.Errorf("content %s: at least one slide is required", path)
	}
	for i, r := range site.Education {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("content %s: education[%d]: %w", path, i, err)
		}
	}
	return site, nil
}

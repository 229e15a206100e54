package content

import (
	"github.com/Zachkp/portfolio/internal/education"
	"github.com/Zachkp/portfolio/internal/effects"
)

var (
	AboutMe = `I like building software that is useful and a little bit fun, and I am always curious about
	how things work behind the scenes. Most of my projects start with a small idea and turn into a chance
	to learn something new: a different language, a new tool, or a tricky problem.`

	ProjectOne = `A terminal-based note keeper with fuzzy search and tagging, built in Go.`

	ProjectTwo = `A weather dashboard that plots hourly forecasts for the places I care about.`

	ProjectThree = `This portfolio: a Go and gin site rendered with HTMX fragments, with a small
	education editor and a debug event log.`
)

// Default returns the built-in site copy.
func Default() *Site {
	return &Site{
		Name:     "Aditya Jadhav",
		Location: "Indapur, Maharashtra",
		AboutMe:  AboutMe,
		Slides: []effects.Slide{
			{Title: "Hi, I'm Aditya", Subtitle: "Software developer", Image: "/images/slide1.jpg"},
			{Title: "I build for the web", Subtitle: "Go, JavaScript and SQL", Image: "/images/slide2.jpg"},
			{Title: "Let's work together", Subtitle: "Say hello below", Image: "/images/slide3.jpg"},
		},
		Skills: []string{"Go", "JavaScript", "HTML & CSS", "SQL", "Git", "Linux"},
		Projects: []Project{
			{Title: "notes", Summary: ProjectOne},
			{Title: "skycast", Summary: ProjectTwo},
			{Title: "portfolio", Summary: ProjectThree},
		},
		Education: []education.Record{
			{
				Degree:      "Bachelor of Computer Science",
				Institution: "Savitribai Phule Pune University",
				Duration:    "2020-2023",
				Grade:       "CGPA 8.6",
			},
			{
				Degree:      "Higher Secondary Certificate",
				Institution: "Indapur Junior College",
				Duration:    "2018-2020",
				Grade:       "82%",
				Description: "Science stream",
			},
		},
	}
}

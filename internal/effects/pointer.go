package effects

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	SparkleCount    = 8
	SparkleSpread   = 100.0
	SparkleLifetime = 800 * time.Millisecond

	parallaxRate   = -0.5
	magneticFactor = 0.1
	tiltDivisor    = 10.0
)

// Sparkle is one short-lived burst particle, offset from the click point.
type Sparkle struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	OffsetX float64 `json:"randomX"`
	OffsetY float64 `json:"randomY"`
}

// Sparkles produces bursts of sparkles around pointer clicks.
type Sparkles struct {
	rng *rand.Rand
}

func NewSparkles(seed uint64) *Sparkles {
	return &Sparkles{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

// Burst returns SparkleCount sparkles at (x, y), each drifting by up to half
// of SparkleSpread in both axes.
func (s *Sparkles) Burst(x, y float64) []Sparkle {
	out := make([]Sparkle, SparkleCount)
	for i := range out {
		out[i] = Sparkle{
			X:       x,
			Y:       y,
			OffsetX: (s.rng.Float64() - 0.5) * SparkleSpread,
			OffsetY: (s.rng.Float64() - 0.5) * SparkleSpread,
		}
	}
	return out
}

// Rect is an element's bounding box in client coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Parallax moves the hero section against the scroll direction.
func Parallax(scrollY float64) string {
	y := scrollY * parallaxRate
	if y == 0 {
		y = 0 // avoid "-0px"
	}
	return fmt.Sprintf("translateY(%gpx)", y)
}

// Magnetic pulls a button a tenth of the way towards the pointer.
func Magnetic(r Rect, clientX, clientY float64) string {
	x := clientX - r.Left - r.Width/2
	y := clientY - r.Top - r.Height/2
	return fmt.Sprintf("translate(%gpx, %gpx)", x*magneticFactor, y*magneticFactor)
}

// MagneticReset is applied when the pointer leaves a button.
const MagneticReset = "translate(0, 0)"

// Tilt rotates the photo frame towards the pointer.
func Tilt(r Rect, clientX, clientY float64) string {
	x := clientX - r.Left
	y := clientY - r.Top
	rotateX := (y - r.Height/2) / tiltDivisor
	rotateY := (r.Width/2 - x) / tiltDivisor
	return fmt.Sprintf("perspective(1000px) rotateX(%gdeg) rotateY(%gdeg) scale(1.05)", rotateX, rotateY)
}

// TiltReset is applied when the pointer leaves the photo frame.
const TiltReset = "perspective(1000px) rotateX(0deg) rotateY(0deg) scale(1)"

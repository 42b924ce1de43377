package director

import "time"

// StartTime anchors the slideshow. The background component only needs
// some fixed instant, so this never follows the wall clock.
var StartTime = time.Date(2009, time.August, 4, 0, 0, 0, 0, time.UTC)

// Slideshow is a complete, cyclic background descriptor.
type Slideshow struct {
	StartTime time.Time
	Slides    []Slide
}

// Slide pairs the static hold of one image with its transition into the next.
type Slide struct {
	Static     Static
	Transition Transition
}

// Static keeps one image on screen.
type Static struct {
	Duration float64 // seconds
	File     string
}

// Transition crossfades From into To.
type Transition struct {
	Duration int // seconds
	From     string
	To       string
}

// Len returns the number of slides.
func (s *Slideshow) Len() int {
	return len(s.Slides)
}

// CycleDuration returns how long one full loop over all slides takes.
func (s *Slideshow) CycleDuration() time.Duration {
	var total float64
	for _, slide := range s.Slides {
		total += slide.Static.Duration + float64(slide.Transition.Duration)
	}
	return time.Duration(total * float64(time.Second))
}

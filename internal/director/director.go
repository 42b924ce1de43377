package director

import (
	"path/filepath"

	"github.com/ivlev/bgslideshow/internal/source"
)

// Build sequences images into a cyclic slideshow. Every image is held for
// imageMinutes and then crossfades for transitionSeconds into the next one;
// the last image fades back into the first. File paths point into destDir,
// where the images are expected to be staged.
//
// An empty image list yields a slideshow without slides.
func Build(images []source.ImageRef, imageMinutes, transitionSeconds int, destDir string) (*Slideshow, error) {
	if err := ValidateDurations(imageMinutes, transitionSeconds); err != nil {
		return nil, err
	}

	holdSeconds := float64(imageMinutes * 60)
	count := len(images)

	slides := make([]Slide, 0, count)
	for i, img := range images {
		next := images[(i+1)%count]
		file := filepath.Join(destDir, img.Name)

		slides = append(slides, Slide{
			Static: Static{
				Duration: holdSeconds,
				File:     file,
			},
			Transition: Transition{
				Duration: transitionSeconds,
				From:     file,
				To:       filepath.Join(destDir, next.Name),
			},
		})
	}

	return &Slideshow{
		StartTime: StartTime,
		Slides:    slides,
	}, nil
}

// BuildDescriptor builds the slideshow and renders it as descriptor text.
func BuildDescriptor(images []source.ImageRef, imageMinutes, transitionSeconds int, destDir string) (string, error) {
	show, err := Build(images, imageMinutes, transitionSeconds, destDir)
	if err != nil {
		return "", err
	}
	return Render(show), nil
}

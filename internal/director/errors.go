package director

import "fmt"

// DurationField names the duration a DurationError refers to.
type DurationField string

const (
	FieldImage      DurationField = "image"
	FieldTransition DurationField = "transition"
)

// DurationError reports an image duration <= 0 or a transition duration < 0.
type DurationError struct {
	Field DurationField
	Value int
}

func (e *DurationError) Error() string {
	if e.Field == FieldTransition {
		return fmt.Sprintf("image transition duration can't be less than 0, given duration: %d seconds", e.Value)
	}
	return fmt.Sprintf("image duration must be greater than 0, given duration: %d minutes", e.Value)
}

// ValidateDurations checks both durations, image first.
func ValidateDurations(imageMinutes, transitionSeconds int) error {
	if imageMinutes <= 0 {
		return &DurationError{Field: FieldImage, Value: imageMinutes}
	}
	if transitionSeconds < 0 {
		return &DurationError{Field: FieldTransition, Value: transitionSeconds}
	}
	return nil
}

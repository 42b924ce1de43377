package source

import "fmt"

// ImageRef identifies one enumerated image.
type ImageRef struct {
	// Name is the base file name, reused unchanged in the destination directory.
	Name string
	// SourcePath is where the image is read from during staging.
	SourcePath string
	// Size is the file size in bytes.
	Size int64
}

// PathError reports an images directory that is missing or not a directory.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("given path is not a directory or does not exist: %s (%s)", e.Path, e.Reason)
}

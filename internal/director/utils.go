package director

import (
	"path/filepath"
)

// DestinationDir returns the staging directory for a slideshow. An empty
// name falls back to the base name of the images directory.
func DestinationDir(root, name, imagesDir string) string {
	if name == "" {
		name = filepath.Base(filepath.Clean(imagesDir))
	}
	return filepath.Join(root, name)
}

// DescriptorPath returns where the descriptor lives inside destDir: a file
// named after the directory itself, with an .xml extension.
func DescriptorPath(destDir string) string {
	clean := filepath.Clean(destDir)
	return filepath.Join(clean, filepath.Base(clean)+".xml")
}

package source

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// Order selects how enumerated images are sequenced in the slideshow.
type Order string

const (
	// OrderName sorts images by file name.
	OrderName Order = "name"
	// OrderExtension groups images by extension (jpg, jpeg, png), by name within a group.
	OrderExtension Order = "extension"
)

// extensions is matched case-sensitively and never modified.
var extensions = [...]string{".jpg", ".jpeg", ".png"}

func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", OrderName:
		return OrderName, nil
	case OrderExtension:
		return OrderExtension, nil
	default:
		return "", fmt.Errorf("unknown image order %q (expected %q or %q)", s, OrderName, OrderExtension)
	}
}

// IsImage reports whether name carries one of the recognized extensions.
func IsImage(name string) bool {
	return extensionRank(name) >= 0
}

func extensionRank(name string) int {
	ext := filepath.Ext(name)
	for i, e := range extensions {
		if ext == e {
			return i
		}
	}
	return -1
}

type ImageSource struct {
	dir    string
	images []ImageRef
}

func NewImageSource(fs afero.Fs, dir string, order Order) (*ImageSource, error) {
	fi, err := fs.Stat(dir)
	if err != nil {
		return nil, &PathError{Path: dir, Reason: "does not exist"}
	}
	if !fi.IsDir() {
		return nil, &PathError{Path: dir, Reason: "not a directory"}
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read images directory %s: %w", dir, err)
	}

	var images []ImageRef
	for _, entry := range entries {
		if entry.IsDir() || !IsImage(entry.Name()) {
			continue
		}
		images = append(images, ImageRef{
			Name:       entry.Name(),
			SourcePath: filepath.Join(dir, entry.Name()),
			Size:       entry.Size(),
		})
	}

	sortImages(images, order)

	return &ImageSource{dir: dir, images: images}, nil
}

func sortImages(images []ImageRef, order Order) {
	switch order {
	case OrderExtension:
		sort.SliceStable(images, func(i, j int) bool {
			ri, rj := extensionRank(images[i].Name), extensionRank(images[j].Name)
			if ri != rj {
				return ri < rj
			}
			return images[i].Name < images[j].Name
		})
	default:
		sort.SliceStable(images, func(i, j int) bool {
			return images[i].Name < images[j].Name
		})
	}
}

func (s *ImageSource) Dir() string {
	return s.dir
}

func (s *ImageSource) Count() int {
	return len(s.images)
}

// Images returns a copy of the enumerated images in slideshow order.
func (s *ImageSource) Images() []ImageRef {
	out := make([]ImageRef, len(s.images))
	copy(out, s.images)
	return out
}

func (s *ImageSource) TotalSize() int64 {
	var total int64
	for _, img := range s.images {
		total += img.Size
	}
	return total
}

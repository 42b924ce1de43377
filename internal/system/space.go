package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/disk"
)

// SpaceError reports a destination filesystem without room for the images.
type SpaceError struct {
	Path string
	Need uint64
	Free uint64
}

func (e *SpaceError) Error() string {
	return fmt.Sprintf("not enough free space at %s: need %d bytes, %d available", e.Path, e.Need, e.Free)
}

// CheckFreeSpace verifies that the filesystem holding path can store need
// more bytes. path does not have to exist yet; its nearest existing
// ancestor is measured instead.
func CheckFreeSpace(path string, need uint64) error {
	existing, err := nearestExisting(path)
	if err != nil {
		return err
	}

	usage, err := disk.Usage(existing)
	if err != nil {
		return fmt.Errorf("failed to query disk usage of %s: %w", existing, err)
	}

	if usage.Free < need {
		return &SpaceError{Path: existing, Need: need, Free: usage.Free}
	}
	return nil
}

func nearestExisting(path string) (string, error) {
	p, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
		parent := filepath.Dir(p)
		if parent == p {
			return "", fmt.Errorf("no existing ancestor of %s", path)
		}
		p = parent
	}
}

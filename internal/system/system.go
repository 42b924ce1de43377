package system

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/ivlev/bgslideshow/internal/source"
)

// Stager places images into the destination directory the descriptor
// points at.
type Stager struct {
	Fs     afero.Fs
	Logger hclog.Logger
}

func NewStager(fs afero.Fs, logger hclog.Logger) *Stager {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Stager{Fs: fs, Logger: logger}
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func (s *Stager) EnsureDir(dir string) error {
	if err := s.Fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}

// CopyImages copies every image into destDir under its own name, replacing
// files that are already there. It stops at the first failure and returns
// how many images were copied up to that point.
func (s *Stager) CopyImages(images []source.ImageRef, destDir string) (int, error) {
	copied := 0
	for _, img := range images {
		target := filepath.Join(destDir, img.Name)
		if err := s.copyFile(img.SourcePath, target); err != nil {
			return copied, fmt.Errorf("failed to copy %s to %s: %w", img.SourcePath, target, err)
		}
		copied++
		s.Logger.Debug("copied image", "source", img.SourcePath, "target", target)
	}
	return copied, nil
}

func (s *Stager) copyFile(src, dst string) error {
	in, err := s.Fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := s.Fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/bgslideshow/internal/director"
	"github.com/ivlev/bgslideshow/internal/source"
)

const DefaultRoot = "/usr/share/backgrounds"

type Config struct {
	ImagesDir          string
	ImageDuration      int // minutes
	TransitionDuration int // seconds
	Name               string
	Root               string
	Order              source.Order
	DryRun             bool
}

// File mirrors the optional YAML configuration file. Unset keys keep the
// built-in defaults. Durations are per run and always come from flags.
type File struct {
	Root  *string `yaml:"root"`
	Order *string `yaml:"order"`
}

func Default() *Config {
	return &Config{
		Root:  DefaultRoot,
		Order: source.OrderName,
	}
}

// Load reads a YAML configuration file and applies it on top of cfg.
func Load(afs afero.Fs, path string, cfg *Config) error {
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	return f.Apply(cfg)
}

func (f *File) Apply(cfg *Config) error {
	if f.Root != nil {
		cfg.Root = *f.Root
	}
	if f.Order != nil {
		order, err := source.ParseOrder(*f.Order)
		if err != nil {
			return err
		}
		cfg.Order = order
	}
	return nil
}

// Validate checks every argument before anything is written.
func (c *Config) Validate(afs afero.Fs) error {
	if c.ImagesDir == "" {
		return &source.PathError{Path: c.ImagesDir, Reason: "no path given"}
	}
	fi, err := afs.Stat(c.ImagesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &source.PathError{Path: c.ImagesDir, Reason: "does not exist"}
		}
		return &source.PathError{Path: c.ImagesDir, Reason: err.Error()}
	}
	if !fi.IsDir() {
		return &source.PathError{Path: c.ImagesDir, Reason: "not a directory"}
	}

	if err := director.ValidateDurations(c.ImageDuration, c.TransitionDuration); err != nil {
		return err
	}

	if _, err := source.ParseOrder(string(c.Order)); err != nil {
		return err
	}

	if c.Root == "" {
		return fmt.Errorf("destination root must not be empty")
	}

	return nil
}

// DestinationDir is where images and the descriptor are staged.
func (c *Config) DestinationDir() string {
	return director.DestinationDir(c.Root, c.Name, c.ImagesDir)
}

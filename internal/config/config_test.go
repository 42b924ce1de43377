package config

import (
	"errors"
	"testing"

	"github.com/spf13/afero"

	"github.com/ivlev/bgslideshow/internal/director"
	"github.com/ivlev/bgslideshow/internal/source"
)

func newFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/pics/holiday", 0755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/pics/file.jpg", []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return fs
}

func validConfig() *Config {
	cfg := Default()
	cfg.ImagesDir = "/pics/holiday"
	cfg.ImageDuration = 5
	cfg.TransitionDuration = 3
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Root != "/usr/share/backgrounds" {
		t.Errorf("Expected default root /usr/share/backgrounds, got %s", cfg.Root)
	}
	if cfg.Order != source.OrderName {
		t.Errorf("Expected default order name, got %s", cfg.Order)
	}
}

func TestValidate(t *testing.T) {
	fs := newFs(t)

	if err := validConfig().Validate(fs); err != nil {
		t.Fatalf("Expected valid config, got %v", err)
	}

	pathTests := []struct {
		name string
		dir  string
	}{
		{name: "empty path", dir: ""},
		{name: "missing path", dir: "/pics/missing"},
		{name: "file instead of directory", dir: "/pics/file.jpg"},
	}
	for _, tt := range pathTests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.ImagesDir = tt.dir
			var pathErr *source.PathError
			if err := cfg.Validate(fs); !errors.As(err, &pathErr) {
				t.Errorf("Expected *source.PathError, got %v", err)
			}
		})
	}

	durationTests := []struct {
		name       string
		image      int
		transition int
	}{
		{name: "zero image duration", image: 0, transition: 3},
		{name: "negative transition", image: 5, transition: -1},
	}
	for _, tt := range durationTests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.ImageDuration = tt.image
			cfg.TransitionDuration = tt.transition
			var durErr *director.DurationError
			if err := cfg.Validate(fs); !errors.As(err, &durErr) {
				t.Errorf("Expected *director.DurationError, got %v", err)
			}
		})
	}

	t.Run("unknown order", func(t *testing.T) {
		cfg := validConfig()
		cfg.Order = "shuffle"
		if err := cfg.Validate(fs); err == nil {
			t.Error("Expected error for unknown order")
		}
	})

	t.Run("empty root", func(t *testing.T) {
		cfg := validConfig()
		cfg.Root = ""
		if err := cfg.Validate(fs); err == nil {
			t.Error("Expected error for empty root")
		}
	})
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `root: /tmp/backgrounds
order: extension
`
	if err := afero.WriteFile(fs, "/etc/bgslideshow.yaml", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := Load(fs, "/etc/bgslideshow.yaml", cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Root != "/tmp/backgrounds" {
		t.Errorf("Expected root /tmp/backgrounds, got %s", cfg.Root)
	}
	if cfg.Order != source.OrderExtension {
		t.Errorf("Expected order extension, got %s", cfg.Order)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/c.yaml", []byte("order: extension\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := Load(fs, "/c.yaml", cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Root != DefaultRoot {
		t.Errorf("Expected default root to be kept, got %s", cfg.Root)
	}
	if cfg.Order != source.OrderExtension {
		t.Errorf("Expected order extension, got %s", cfg.Order)
	}
}

func TestLoad_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/bad.yaml", []byte("root: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/order.yaml", []byte("order: shuffle\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{"/missing.yaml", "/bad.yaml", "/order.yaml"} {
		if err := Load(fs, path, Default()); err == nil {
			t.Errorf("Expected error loading %s", path)
		}
	}
}

func TestDestinationDir(t *testing.T) {
	cfg := validConfig()
	if got := cfg.DestinationDir(); got != "/usr/share/backgrounds/holiday" {
		t.Errorf("Unexpected destination %s", got)
	}
	cfg.Name = "summer"
	if got := cfg.DestinationDir(); got != "/usr/share/backgrounds/summer" {
		t.Errorf("Unexpected destination %s", got)
	}
}

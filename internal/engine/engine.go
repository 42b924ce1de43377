package engine

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/ivlev/bgslideshow/internal/config"
	"github.com/ivlev/bgslideshow/internal/director"
	"github.com/ivlev/bgslideshow/internal/source"
	"github.com/ivlev/bgslideshow/internal/system"
)

// SpaceCheckFunc verifies that need bytes fit below path.
type SpaceCheckFunc func(path string, need uint64) error

type SlideshowProject struct {
	Config *config.Config
	Fs     afero.Fs
	Logger hclog.Logger
	Stager *system.Stager

	// SpaceCheck runs before anything is created. Nil skips the check.
	SpaceCheck SpaceCheckFunc
	// Out receives the descriptor in dry-run mode.
	Out        io.Writer
}

// Result summarizes a completed run.
type Result struct {
	DestDir        string
	DescriptorPath string
	Descriptor     string
	Images         []source.ImageRef
	Copied         int
}

func NewSlideshowProject(cfg *config.Config, fs afero.Fs, logger hclog.Logger) *SlideshowProject {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	p := &SlideshowProject{
		Config: cfg,
		Fs:     fs,
		Logger: logger,
		Stager: system.NewStager(fs, logger.Named("stager")),
		Out:    os.Stdout,
	}
	if _, ok := fs.(*afero.OsFs); ok {
		p.SpaceCheck = system.CheckFreeSpace
	}
	return p
}

func (p *SlideshowProject) Run() (*Result, error) {
	startTime := time.Now()

	if err := p.Config.Validate(p.Fs); err != nil {
		return nil, err
	}

	src, err := source.NewImageSource(p.Fs, p.Config.ImagesDir, p.Config.Order)
	if err != nil {
		return nil, err
	}
	images := src.Images()

	destDir := p.Config.DestinationDir()
	descriptorPath := director.DescriptorPath(destDir)

	p.Logger.Info("enumerated images",
		"dir", src.Dir(),
		"count", src.Count(),
		"order", p.Config.Order,
	)

	show, err := director.Build(images, p.Config.ImageDuration, p.Config.TransitionDuration, destDir)
	if err != nil {
		return nil, err
	}
	descriptor := director.Render(show)

	p.Logger.Debug("built slideshow", "slides", show.Len(), "cycle", show.CycleDuration())

	result := &Result{
		DestDir:        destDir,
		DescriptorPath: descriptorPath,
		Descriptor:     descriptor,
		Images:         images,
	}

	if p.Config.DryRun {
		p.Logger.Info("dry run, nothing written", "descriptor", descriptorPath)
		if p.Out != nil {
			if _, err := io.WriteString(p.Out, descriptor); err != nil {
				return nil, err
			}
		}
		return result, nil
	}

	if p.SpaceCheck != nil {
		need := uint64(src.TotalSize()) + uint64(len(descriptor))
		if err := p.SpaceCheck(destDir, need); err != nil {
			return nil, err
		}
	}

	p.Logger.Info("creating destination directory", "path", destDir)
	if err := p.Stager.EnsureDir(destDir); err != nil {
		return nil, err
	}

	p.Logger.Info("writing descriptor", "path", descriptorPath, "slides", show.Len())
	if err := director.WriteDescriptor(p.Fs, descriptorPath, descriptor); err != nil {
		return nil, fmt.Errorf("failed to write descriptor: %w", err)
	}

	p.Logger.Info("copying images", "target", destDir)
	copied, err := p.Stager.CopyImages(images, destDir)
	result.Copied = copied
	if err != nil {
		return result, err
	}

	p.Logger.Info("done",
		"copied", copied,
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	return result, nil
}

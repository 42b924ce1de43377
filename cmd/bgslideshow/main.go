// The bgslideshow command turns a directory of images into a desktop
// background slideshow and installs it under /usr/share/backgrounds.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/ivlev/bgslideshow/internal/config"
	"github.com/ivlev/bgslideshow/internal/engine"
	"github.com/ivlev/bgslideshow/internal/source"
)

const version = "1.0.0"

func main() {
	app := newApp(afero.NewOsFs(), os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "[-] %v\n", err)
		os.Exit(1)
	}
}

func newApp(fs afero.Fs, stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "bgslideshow"
	app.Usage = "create xml file for background slideshow"
	app.UsageText = "bgslideshow -i <images-dir> -d <minutes> -t <seconds> [-n <name>]"
	app.Version = version
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:     "images, i",
			Usage:    "path to directory containing slideshow images",
			Required: true,
		},
		cli.IntFlag{
			Name:     "duration, d",
			Usage:    "single image duration in minutes",
			Required: true,
		},
		cli.IntFlag{
			Name:     "transition, t",
			Usage:    "transition duration in seconds",
			Required: true,
		},
		cli.StringFlag{
			Name:  "name, n",
			Usage: "optional name overload for the directory created under the root",
		},
		cli.StringFlag{
			Name:   "root, r",
			Usage:  "directory the slideshow directory is created in",
			EnvVar: "BGSLIDESHOW_ROOT",
			Value:  config.DefaultRoot,
		},
		cli.StringFlag{
			Name:  "order, o",
			Usage: "image order: name or extension",
			Value: string(source.OrderName),
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML file with defaults for root and order",
		},
		cli.BoolFlag{
			Name:  "dry-run",
			Usage: "print the descriptor without writing anything",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging",
		},
	}
	app.Action = func(c *cli.Context) error {
		return run(c, fs, stdout, stderr)
	}
	return app
}

func run(c *cli.Context, fs afero.Fs, stdout, stderr io.Writer) error {
	level := hclog.Info
	if c.Bool("verbose") {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "bgslideshow",
		Level:  level,
		Output: stderr,
	})

	cfg, err := buildConfig(c, fs)
	if err != nil {
		return err
	}

	project := engine.NewSlideshowProject(cfg, fs, logger)
	project.Out = stdout

	result, err := project.Run()
	if err != nil {
		return err
	}

	if !cfg.DryRun {
		logger.Info("slideshow ready", "descriptor", result.DescriptorPath, "images", result.Copied)
	}
	return nil
}

// buildConfig layers built-in defaults, the optional config file and
// explicitly set flags, in that order.
func buildConfig(c *cli.Context, fs afero.Fs) (*config.Config, error) {
	cfg := config.Default()

	if path := c.String("config"); path != "" {
		if err := config.Load(fs, path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ImagesDir = c.String("images")
	cfg.ImageDuration = c.Int("duration")
	cfg.TransitionDuration = c.Int("transition")
	cfg.Name = c.String("name")
	cfg.DryRun = c.Bool("dry-run")

	if c.IsSet("root") {
		cfg.Root = c.String("root")
	}
	if c.IsSet("order") {
		order, err := source.ParseOrder(c.String("order"))
		if err != nil {
			return nil, err
		}
		cfg.Order = order
	}

	return cfg, nil
}

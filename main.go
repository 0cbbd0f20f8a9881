package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/log"
	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

var logger = log.New("raytracer")

// renderConfig holds the command line settings for one render
type renderConfig struct {
	Scene          string
	Width          int   // 0 = scene default
	Samples        int   // 0 = scene default
	Depth          int   // 0 = scene default
	Seed           int64 // Seeds scene construction and per-row sampling
	Workers        int   // 0 = renderer.DefaultWorkerCount()
	SingleThread   bool
	Iterative      bool
	Out            string // PPM destination, "-" = stdout
	PNG            string // Optional PNG copy
	Thumbnail      string // Optional PNG preview
	ThumbnailWidth int
}

func main() {
	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render sphere scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "single-thread, s",
			Usage:  "render every row on the main goroutine",
			EnvVar: "RAYTRACER_SINGLE_THREAD",
		},
		cli.StringFlag{
			Name:   "scene",
			Value:  "random",
			Usage:  "built-in scene to render (see --list-scenes)",
			EnvVar: "RAYTRACER_SCENE",
		},
		cli.IntFlag{
			Name:   "width",
			Usage:  "image width; height follows the scene aspect ratio (0 = scene default)",
			EnvVar: "RAYTRACER_WIDTH",
		},
		cli.IntFlag{
			Name:   "samples",
			Usage:  "samples per pixel (0 = scene default)",
			EnvVar: "RAYTRACER_SAMPLES",
		},
		cli.IntFlag{
			Name:   "depth",
			Value:  50,
			Usage:  "maximum ray bounces",
			EnvVar: "RAYTRACER_DEPTH",
		},
		cli.Int64Flag{
			Name:   "seed",
			Value:  42,
			Usage:  "base seed for scene construction and sampling",
			EnvVar: "RAYTRACER_SEED",
		},
		cli.IntFlag{
			Name:   "workers",
			Usage:  "number of render workers (0 = one less than the CPU count)",
			EnvVar: "RAYTRACER_WORKERS",
		},
		cli.BoolFlag{
			Name:   "iterative",
			Usage:  "use the loop-based path tracer instead of the recursive one",
			EnvVar: "RAYTRACER_ITERATIVE",
		},
		cli.StringFlag{
			Name:   "out, o",
			Value:  "-",
			Usage:  "PPM output file, - for stdout",
			EnvVar: "RAYTRACER_OUT",
		},
		cli.StringFlag{
			Name:  "png",
			Usage: "also save the render as a PNG file",
		},
		cli.StringFlag{
			Name:  "thumbnail",
			Usage: "save a downscaled PNG preview",
		},
		cli.IntFlag{
			Name:  "thumbnail-width",
			Value: 200,
			Usage: "width of the PNG preview",
		},
		cli.BoolFlag{
			Name:  "list-scenes",
			Usage: "list the built-in scenes and exit",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Action = runRender

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.Bool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.Bool("vv") {
		log.SetLevel(log.Debug)
	}
}

// runRender is the app action
func runRender(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.Bool("list-scenes") {
		listScenes(os.Stdout)
		return nil
	}

	config := renderConfig{
		Scene:          ctx.String("scene"),
		Width:          ctx.Int("width"),
		Samples:        ctx.Int("samples"),
		Depth:          ctx.Int("depth"),
		Seed:           ctx.Int64("seed"),
		Workers:        ctx.Int("workers"),
		SingleThread:   ctx.Bool("single-thread"),
		Iterative:      ctx.Bool("iterative"),
		Out:            ctx.String("out"),
		PNG:            ctx.String("png"),
		Thumbnail:      ctx.String("thumbnail"),
		ThumbnailWidth: ctx.Int("thumbnail-width"),
	}

	logger.Noticef("rendering scene %s", config.Scene)
	stats, err := render(config, os.Stdout)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	logger.Noticef("render finished in %s\n%s", stats.Elapsed.Round(time.Millisecond), stats.Table())
	return nil
}

// createScene builds the named scene and applies the size and sampling overrides
func createScene(config renderConfig) (*scene.Scene, error) {
	info, err := scene.Lookup(config.Scene)
	if err != nil {
		return nil, err
	}

	s := info.New(rand.New(rand.NewSource(config.Seed)))
	if config.Width > 0 {
		s.SetWidth(config.Width)
	}

	if info.Type == scene.TypeRaytraced {
		if config.Samples > 0 {
			s.SamplingConfig.SamplesPerPixel = config.Samples
		}
		if config.Depth > 0 {
			s.SamplingConfig.MaxDepth = config.Depth
		}
	}

	if err := s.SamplingConfig.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", info.ID, err)
	}

	logger.Infof("scene %s: %dx%d, %d samples per pixel, max depth %d", info.ID,
		s.SamplingConfig.Width, s.SamplingConfig.Height, s.SamplingConfig.SamplesPerPixel, s.SamplingConfig.MaxDepth)
	return s, nil
}

func createIntegrator(iterative bool) integrator.Integrator {
	if iterative {
		return integrator.NewIterativePathTracingIntegrator(integrator.DefaultSkyGradient())
	}
	return integrator.NewPathTracingIntegrator(integrator.DefaultSkyGradient())
}

// render runs the configured render, writing the PPM to stdout when Out is "-"
func render(config renderConfig, stdout io.Writer) (renderer.RenderStats, error) {
	s, err := createScene(config)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	rr := s.Renderer(createIntegrator(config.Iterative))

	// The gradient pattern is defined on raw values; traced colors are gamma corrected
	quantize := output.GammaQuantizer
	if s.World == nil {
		quantize = output.LinearQuantizer
	}

	var out io.Writer = stdout
	if config.Out != "" && config.Out != "-" {
		file, err := os.Create(config.Out)
		if err != nil {
			return renderer.RenderStats{}, fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	ppm := output.NewPPMWriter(out, rr.Width(), rr.Height(), quantize)
	if err := ppm.WriteHeader(); err != nil {
		return renderer.RenderStats{}, fmt.Errorf("failed to write PPM header: %w", err)
	}

	var sink renderer.RowSink = ppm
	var img *output.ImageSink
	if config.PNG != "" || config.Thumbnail != "" {
		img = output.NewImageSink(rr.Width(), rr.Height(), quantize)
		sink = output.MultiSink(ppm, img)
	}

	stats, err := renderer.Render(rr, sink, renderer.RenderOptions{
		SingleThread: config.SingleThread,
		Workers:      config.Workers,
		Seed:         config.Seed,
	})
	if err != nil {
		return stats, err
	}
	if err := ppm.Close(); err != nil {
		return stats, err
	}

	if config.PNG != "" {
		if err := img.WritePNG(config.PNG); err != nil {
			return stats, err
		}
		logger.Noticef("saved %s", config.PNG)
	}
	if config.Thumbnail != "" {
		if err := img.WriteThumbnail(config.Thumbnail, config.ThumbnailWidth); err != nil {
			return stats, err
		}
		logger.Noticef("saved %s", config.Thumbnail)
	}

	return stats, nil
}

// listScenes prints the scene registry as a table
func listScenes(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scene", "Name", "Type", "Description"})
	table.SetAutoWrapText(false)
	for _, info := range scene.ListScenes() {
		table.Append([]string{info.ID, info.DisplayName, info.Type, info.Description})
	}
	table.Render()
}

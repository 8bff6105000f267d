package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inkfield/inkfield/internal/contour"
	"github.com/inkfield/inkfield/internal/gallery"
	"github.com/inkfield/inkfield/internal/pipeline"
	"github.com/inkfield/inkfield/internal/worker"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render sketch frames",
	Long:  `Render one or more frames of a sketch to PNG files or a gallery archive.`,
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	// Run flags
	renderCmd.Flags().StringP("sketch", "s", "contours", "Sketch to render (see 'inkfield sketches')")
	renderCmd.Flags().Int64("seed", 1337, "Deterministic seed for the whole run")
	renderCmd.Flags().Int("width", 800, "Canvas width in pixels")
	renderCmd.Flags().Int("height", 800, "Canvas height in pixels")
	renderCmd.Flags().StringP("palette", "p", "", "Palette name (see 'inkfield palettes')")
	renderCmd.Flags().String("frames", "1", "Frames to render: a count (\"12\") or an inclusive range (\"3..8\")")
	renderCmd.Flags().Float64("time-step", 0.02, "Time advance per frame for animations")
	renderCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	renderCmd.Flags().Bool("progress", true, "Show progress bar during batch rendering")
	renderCmd.Flags().Bool("force", false, "Force re-rendering even if a frame exists")
	renderCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")

	// Output format flags
	renderCmd.Flags().String("format", "folder", "Output format: folder or gallery")
	renderCmd.Flags().String("output-file", "", "Output file path for gallery format (e.g., run.gallery)")

	// Post pass flags
	renderCmd.Flags().Bool("glow", false, "Add a soft glow pass behind the strokes")
	renderCmd.Flags().Float64("grain", 0, "Film grain strength (0 disables)")
	renderCmd.Flags().Bool("label", false, "Stamp the sketch name and seed onto each frame")

	// Contour parameter flags
	renderCmd.Flags().Int("points", 24, "Base polygon vertex count")
	renderCmd.Flags().Float64("noise-freq", 3.5, "Spatial noise frequency along the contour")
	renderCmd.Flags().Float64("time-freq", 0.8, "Temporal noise frequency")
	renderCmd.Flags().Float64("tension", 1.2, "Curve tension (clamped to 0.1..3.0)")
	renderCmd.Flags().Float64("smoothing", 1.5, "Circular smoothing strength for displacements")
	renderCmd.Flags().Int("layers", 12, "Number of stacked contour layers")
	renderCmd.Flags().Int("bold-every", 4, "Draw every n-th layer with a heavier stroke")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"render.sketch", "sketch"},
		{"render.seed", "seed"},
		{"render.width", "width"},
		{"render.height", "height"},
		{"render.palette", "palette"},
		{"render.frames", "frames"},
		{"render.time_step", "time-step"},
		{"render.workers", "workers"},
		{"render.progress", "progress"},
		{"render.force", "force"},
		{"render.png_compression", "png-compression"},
		{"render.format", "format"},
		{"render.output_file", "output-file"},
		{"render.glow", "glow"},
		{"render.grain", "grain"},
		{"render.label", "label"},
		{"render.points", "points"},
		{"render.noise_freq", "noise-freq"},
		{"render.time_freq", "time-freq"},
		{"render.tension", "tension"},
		{"render.smoothing", "smoothing"},
		{"render.layers", "layers"},
		{"render.bold_every", "bold-every"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, renderCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	sketchName := viper.GetString("render.sketch")
	seed := viper.GetInt64("render.seed")
	width := viper.GetInt("render.width")
	height := viper.GetInt("render.height")
	paletteName := viper.GetString("render.palette")
	framesSpec := viper.GetString("render.frames")
	workers := viper.GetInt("render.workers")
	showProgress := viper.GetBool("render.progress")
	force := viper.GetBool("render.force")
	outputDir := viper.GetString("output-dir")
	format := viper.GetString("render.format")
	outputFile := viper.GetString("render.output_file")

	if format != "folder" && format != "gallery" {
		return fmt.Errorf("invalid format %q: must be 'folder' or 'gallery'", format)
	}
	if format == "gallery" && outputFile == "" {
		return fmt.Errorf("--output-file is required when using --format=gallery")
	}

	first, last, err := parseFrameRange(framesSpec)
	if err != nil {
		return fmt.Errorf("invalid frames: %w", err)
	}

	cp := contour.DefaultParams(seed)
	cp.Points = viper.GetInt("render.points")
	cp.NoiseFreq = viper.GetFloat64("render.noise_freq")
	cp.TimeFreq = viper.GetFloat64("render.time_freq")
	cp.Tension = viper.GetFloat64("render.tension")
	cp.Smoothing = viper.GetFloat64("render.smoothing")
	cp.Layers = viper.GetInt("render.layers")
	cp.BoldEvery = viper.GetInt("render.bold_every")

	opts := pipeline.Options{
		PNGCompression: viper.GetString("render.png_compression"),
		TimeStep:       viper.GetFloat64("render.time_step"),
		Glow:           viper.GetBool("render.glow"),
		Grain:          viper.GetFloat64("render.grain"),
		Label:          viper.GetBool("render.label"),
		Contour:        cp,
	}

	var galleryWriter *gallery.Writer
	if format == "gallery" {
		galleryWriter, err = gallery.NewWriter(outputFile, gallery.Metadata{
			Name:        "inkfield",
			Description: fmt.Sprintf("%s frames %d..%d, seed %d", sketchName, first, last, seed),
			Version:     "1.0",
		})
		if err != nil {
			return fmt.Errorf("failed to create gallery writer: %w", err)
		}
		defer galleryWriter.Close()
		opts.FrameWriter = galleryWriter
		outputDir = ""
	}

	renderer, err := pipeline.NewRenderer(outputDir, width, height, seed, paletteName, opts, logger)
	if err != nil {
		return fmt.Errorf("failed to init renderer: %w", err)
	}

	logger.Info("Starting render",
		"sketch", sketchName,
		"seed", seed,
		"frames", fmt.Sprintf("%d-%d", first, last),
		"size", fmt.Sprintf("%dx%d", width, height),
		"format", format,
	)

	// Single frame needs no pool or progress bar.
	if first == last {
		path, err := renderer.RenderFrame(context.Background(), sketchName, first, force)
		if err != nil {
			return fmt.Errorf("failed to render frame: %w", err)
		}
		if path != "" {
			logger.Info("Frame rendered", "path", path)
		}
		return flushGallery(galleryWriter)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received interrupt signal, cancelling...")
		cancel()
	}()

	tasks := make([]worker.Task, 0, last-first+1)
	for frame := first; frame <= last; frame++ {
		tasks = append(tasks, worker.Task{Sketch: sketchName, Frame: frame, Force: force})
	}

	progress := worker.NewProgress(len(tasks), showProgress)
	pool := worker.New(worker.Config{
		Workers:    workers,
		Renderer:   renderer,
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	var failedCount int
	for _, r := range results {
		if r.Err != nil {
			failedCount++
			logger.Error("Frame rendering failed", "frame", r.Task.Frame, "error", r.Err)
		}
	}

	logger.Info(progress.Summary())

	if failedCount > 0 {
		return fmt.Errorf("%d frames failed to render", failedCount)
	}

	return flushGallery(galleryWriter)
}

func flushGallery(w *gallery.Writer) error {
	if w == nil {
		return nil
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush gallery: %w", err)
	}
	return nil
}

// parseFrameRange parses a frame spec. A bare count "12" renders frames 0
// through 11, an inclusive range "3..8" renders frames 3 through 8.
func parseFrameRange(s string) (first, last int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("empty frame spec")
	}

	if lo, hi, ok := strings.Cut(s, ".."); ok {
		first, err = strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid range start %q: %w", lo, err)
		}
		last, err = strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid range end %q: %w", hi, err)
		}
		if first < 0 {
			return 0, 0, fmt.Errorf("range start must be non-negative, got %d", first)
		}
		if first > last {
			return 0, 0, fmt.Errorf("range start (%d) must be <= range end (%d)", first, last)
		}
		return first, last, nil
	}

	count, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid frame count %q: %w", s, err)
	}
	if count < 1 {
		return 0, 0, fmt.Errorf("frame count must be at least 1, got %d", count)
	}
	return 0, count - 1, nil
}

// Package pipeline wires sketches, paper, post passes, and output targets
// into a single frame rendering step.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inkfield/inkfield/internal/canvas"
	"github.com/inkfield/inkfield/internal/compose"
	"github.com/inkfield/inkfield/internal/contour"
	"github.com/inkfield/inkfield/internal/export"
	"github.com/inkfield/inkfield/internal/gallery"
	"github.com/inkfield/inkfield/internal/palette"
	"github.com/inkfield/inkfield/internal/post"
	"github.com/inkfield/inkfield/internal/sketch"
	"github.com/inkfield/inkfield/internal/texture"
)

// FrameWriter receives encoded frames instead of the folder output. Used
// for gallery archives.
type FrameWriter interface {
	WriteFrame(entry gallery.Entry) error
}

// Options configure a Renderer beyond its required fields.
type Options struct {
	PNGCompression string
	// TimeStep is the time advance per frame for animations.
	TimeStep float64
	// Glow enables the blur halo pass, Grain the film grain pass.
	Glow  bool
	Grain float64
	Label bool
	// Contour overrides the contour parameters; zero value uses defaults.
	Contour contour.Params
	// FrameWriter, when set, receives frames instead of the output folder.
	FrameWriter FrameWriter
}

// Renderer renders frames of one configured run.
type Renderer struct {
	outputDir string
	width     int
	height    int
	seed      int64
	pal       palette.Palette
	pngLevel  png.CompressionLevel
	opts      Options
	logger    *slog.Logger
}

// NewRenderer validates the run configuration and prepares a renderer.
func NewRenderer(outputDir string, width, height int, seed int64, paletteName string, opts Options, logger *slog.Logger) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas dimensions must be positive")
	}
	if paletteName == "" {
		paletteName = palette.DefaultName
	}
	pal, ok := palette.Lookup(paletteName)
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", paletteName)
	}
	level, err := export.CompressionLevel(opts.PNGCompression)
	if err != nil {
		return nil, err
	}
	if opts.TimeStep == 0 {
		opts.TimeStep = 0.02
	}

	return &Renderer{
		outputDir: outputDir,
		width:     width,
		height:    height,
		seed:      seed,
		pal:       pal,
		pngLevel:  level,
		opts:      opts,
		logger:    logger,
	}, nil
}

// RenderFrame renders one frame of the named sketch and writes it to the
// configured output. Returns the output path (empty for gallery output).
func (r *Renderer) RenderFrame(ctx context.Context, sketchName string, frame int, force bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s, ok := sketch.Lookup(sketchName)
	if !ok {
		return "", fmt.Errorf("unknown sketch %q", sketchName)
	}

	cp := r.opts.Contour
	if cp.Points == 0 {
		cp = contour.DefaultParams(r.seed)
	}
	cp.Seed = r.seed
	cp = cp.Clamped()

	finalPath := filepath.Join(r.outputDir,
		export.FrameFilename(sketchName, r.seed, cp.Points, cp.NoiseFreq, frame))
	if r.opts.FrameWriter == nil && !force {
		if _, err := os.Stat(finalPath); err == nil {
			r.log().Info("Frame already exists; skipping", "sketch", sketchName, "frame", frame, "path", finalPath)
			return finalPath, nil
		}
	}

	cfg := sketch.Config{
		Seed:    r.seed,
		Width:   r.width,
		Height:  r.height,
		Frame:   frame,
		Time:    float64(frame) * r.opts.TimeStep,
		Palette: r.pal,
		Contour: cp,
		Label:   r.opts.Label,
	}

	r.log().Debug("Rendering frame", "sketch", sketchName, "frame", frame, "time", cfg.Time)

	c := canvas.New(r.width, r.height)
	if err := s.Render(c, cfg); err != nil {
		return "", fmt.Errorf("failed to render sketch %s: %w", sketchName, err)
	}

	paper, err := texture.GeneratePaper(texture.PaperParams{
		Width:  r.width,
		Height: r.height,
		Seed:   r.seed,
		Base:   r.pal.Background,
		Grain:  0.5,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate paper: %w", err)
	}

	passes := make([]image.Image, 0, 2)
	if r.opts.Glow {
		passes = append(passes, post.Glow(c.Image(), 3.0, 0.45))
	}
	passes = append(passes, c.Image())

	frameImg, err := compose.OverBase(paper, passes)
	if err != nil {
		return "", fmt.Errorf("failed to composite frame: %w", err)
	}

	if r.opts.Grain > 0 {
		frameImg = post.Grain(frameImg, r.seed+int64(frame), r.opts.Grain)
	}

	if r.opts.FrameWriter != nil {
		data, err := export.EncodePNG(frameImg, r.pngLevel)
		if err != nil {
			return "", err
		}
		params, err := json.Marshal(cp)
		if err != nil {
			return "", fmt.Errorf("failed to encode params: %w", err)
		}
		if err := r.opts.FrameWriter.WriteFrame(gallery.Entry{
			Sketch: sketchName,
			Seed:   r.seed,
			Frame:  frame,
			Params: string(params),
			Data:   data,
		}); err != nil {
			return "", fmt.Errorf("failed to archive frame: %w", err)
		}
		return "", nil
	}

	if err := export.WritePNG(finalPath, frameImg, r.pngLevel); err != nil {
		return "", err
	}
	return finalPath, nil
}

func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

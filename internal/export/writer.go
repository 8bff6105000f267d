// Package export writes rendered frames to disk.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// CompressionLevel maps the CLI compression name to a png encoder level.
func CompressionLevel(name string) (png.CompressionLevel, error) {
	switch name {
	case "", "default":
		return png.DefaultCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	case "none":
		return png.NoCompression, nil
	default:
		return png.DefaultCompression, fmt.Errorf("invalid png compression %q: must be default, speed, best, or none", name)
	}
}

// FrameFilename builds the canonical output name for a rendered frame. The
// name encodes the sketch, seed, and key parameters so a file can be traced
// back to the exact run that produced it.
func FrameFilename(sketch string, seed int64, points int, noiseFreq float64, frame int) string {
	freq := strings.ReplaceAll(fmt.Sprintf("%.2f", noiseFreq), ".", "p")
	return fmt.Sprintf("%s_s%d_n%d_f%s_t%04d.png", sketch, seed, points, freq, frame)
}

// WritePNG encodes img to path at the given compression level, creating
// parent directories as needed.
func WritePNG(path string, img image.Image, level png.CompressionLevel) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frame %s: %w", path, err)
	}
	defer file.Close() // nolint:errcheck

	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode frame %s: %w", path, err)
	}
	return nil
}

// EncodePNG encodes img into memory at the given compression level.
func EncodePNG(img image.Image, level png.CompressionLevel) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	return buf.Bytes(), nil
}

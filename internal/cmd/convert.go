package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inkfield/inkfield/internal/contour"
	"github.com/inkfield/inkfield/internal/gallery"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert folder frames to a gallery archive",
	Long:  `Convert an existing frame folder into a single gallery database.`,
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("input-dir", "./frames", "Input directory containing rendered frames")
	convertCmd.Flags().StringP("output", "o", "", "Output gallery file path (required)")
	convertCmd.Flags().String("name", "inkfield", "Gallery name")
	convertCmd.Flags().String("description", "Generative sketch frames", "Gallery description")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"convert.input_dir", "input-dir"},
		{"convert.output", "output"},
		{"convert.name", "name"},
		{"convert.description", "description"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, convertCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputDir := viper.GetString("convert.input_dir")
	outputFile := viper.GetString("convert.output")
	name := viper.GetString("convert.name")
	description := viper.GetString("convert.description")

	if logger == nil {
		initLogging()
	}

	if outputFile == "" {
		return fmt.Errorf("--output is required")
	}

	if _, err := os.Stat(inputDir); os.IsNotExist(err) {
		return fmt.Errorf("input directory does not exist: %s", inputDir)
	}

	logger.Info("Converting folder frames to gallery",
		"input_dir", inputDir,
		"output", outputFile,
		"name", name,
	)

	frames, err := scanFramesDirectory(inputDir)
	if err != nil {
		return fmt.Errorf("failed to scan frames directory: %w", err)
	}
	if len(frames) == 0 {
		return fmt.Errorf("no frames found in %s", inputDir)
	}

	logger.Info("Found frames", "count", len(frames))

	writer, err := gallery.NewWriter(outputFile, gallery.Metadata{
		Name:        name,
		Description: description,
		Version:     "1.0",
	})
	if err != nil {
		return fmt.Errorf("failed to create gallery writer: %w", err)
	}
	defer writer.Close()

	for i, info := range frames {
		data, err := os.ReadFile(info.path)
		if err != nil {
			logger.Error("Failed to read frame", "path", info.path, "error", err)
			continue
		}

		// The filename only carries a subset of the run parameters, so
		// the archived params are a best-effort reconstruction.
		cp := contour.DefaultParams(info.seed)
		cp.Points = info.points
		cp.NoiseFreq = info.noiseFreq
		params, err := json.Marshal(cp.Clamped())
		if err != nil {
			return fmt.Errorf("failed to encode params: %w", err)
		}

		if err := writer.WriteFrame(gallery.Entry{
			Sketch: info.sketch,
			Seed:   info.seed,
			Frame:  info.frame,
			Params: string(params),
			Data:   data,
		}); err != nil {
			logger.Error("Failed to write frame", "path", info.path, "error", err)
			continue
		}

		if (i+1)%100 == 0 {
			logger.Info("Progress", "converted", i+1, "total", len(frames))
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush frames: %w", err)
	}

	logger.Info("Conversion complete", "output", outputFile, "frames", len(frames))
	return nil
}

type frameInfo struct {
	sketch    string
	seed      int64
	points    int
	noiseFreq float64
	frame     int
	path      string
}

// framePattern matches the canonical frame filename, e.g.
// contours_s42_n24_f3p50_t0007.png.
var framePattern = regexp.MustCompile(`^([a-z]+)_s(-?\d+)_n(\d+)_f(\d+p\d+)_t(\d+)\.png$`)

// scanFramesDirectory walks a directory tree collecting rendered frames.
func scanFramesDirectory(dir string) ([]frameInfo, error) {
	var frames []frameInfo

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		matches := framePattern.FindStringSubmatch(filepath.Base(path))
		if matches == nil {
			return nil
		}

		seed, _ := strconv.ParseInt(matches[2], 10, 64)
		points, _ := strconv.Atoi(matches[3])
		noiseFreq, _ := strconv.ParseFloat(strings.ReplaceAll(matches[4], "p", "."), 64)
		frame, _ := strconv.Atoi(matches[5])

		frames = append(frames, frameInfo{
			sketch:    matches[1],
			seed:      seed,
			points:    points,
			noiseFreq: noiseFreq,
			frame:     frame,
			path:      path,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return frames, nil
}

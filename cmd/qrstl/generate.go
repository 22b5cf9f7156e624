package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/qrstl/internal/app"
	"github.com/philipparndt/qrstl/internal/logger"
	"github.com/philipparndt/qrstl/pkg/mesh"
	"github.com/philipparndt/qrstl/pkg/qr"
	"github.com/philipparndt/qrstl/pkg/stl"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputPath   string
	asciiOutput  bool
	pngPath      string
	pngSizePx    int
	footprintMM  float64
	borderMM     float64
	moduleHeight float64
	baseHeight   float64
	eccName      string
)

var generateCmd = &cobra.Command{
	Use:   "generate [text]",
	Short: "Generate a printable QR tag from text",
	Long: `Encode arbitrary text as a QR code and write the printable tag as an
STL file. Dimensions default to the loaded profile; flags override it.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addTagFlags(generateCmd)
}

// addTagFlags registers the output and dimension flags shared by the
// generate, wifi and watch commands
func addTagFlags(cmd *cobra.Command) {
	defaults := mesh.DefaultOptions()

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output STL file, or an existing directory")
	cmd.MarkFlagRequired("output")
	cmd.Flags().BoolVar(&asciiOutput, "ascii", false, "write ASCII STL instead of binary")
	cmd.Flags().StringVar(&pngPath, "png", "", "also write a PNG preview of the QR code")
	cmd.Flags().IntVar(&pngSizePx, "png-size", 512, "PNG edge length in pixels")
	cmd.Flags().Float64Var(&footprintMM, "footprint", defaults.FootprintMM, "QR area edge length in mm")
	cmd.Flags().Float64Var(&borderMM, "border", defaults.BorderMM, "base plate margin around the QR area in mm")
	cmd.Flags().Float64Var(&moduleHeight, "module-height", defaults.ModuleThicknessMM, "height of raised modules in mm")
	cmd.Flags().Float64Var(&baseHeight, "base-height", defaults.BaseThicknessMM, "height of the base plate in mm")
	cmd.Flags().StringVar(&eccName, "ecc", "", "error correction level (low, medium, quartile, high)")
}

// outputSink resolves the --output flag into a write target. An
// existing directory receives the profile's suggested file name;
// anything else names the output file directly.
func outputSink(path string) (stl.Sink, string) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return stl.DirSink{Dir: path}, profile.Export.SuggestedName
	}
	return stl.FileSink{Path: path}, filepath.Base(path)
}

// tagOptions merges explicitly set dimension flags over the profile
func tagOptions(cmd *cobra.Command) mesh.Options {
	opts := profile.BuildOptions()

	flags := cmd.Flags()
	if flags.Changed("footprint") {
		opts.FootprintMM = footprintMM
	}
	if flags.Changed("border") {
		opts.BorderMM = borderMM
	}
	if flags.Changed("module-height") {
		opts.ModuleThicknessMM = moduleHeight
	}
	if flags.Changed("base-height") {
		opts.BaseThicknessMM = baseHeight
	}
	return opts
}

// newTagGenerator builds a generator from the profile with explicitly
// set flags merged over it
func newTagGenerator(cmd *cobra.Command) (*app.Generator, error) {
	gen, err := app.NewGenerator(profile)
	if err != nil {
		return nil, err
	}
	gen.SetOptions(tagOptions(cmd))
	if cmd.Flags().Changed("ecc") {
		level, err := qr.ParseLevel(eccName)
		if err != nil {
			return nil, err
		}
		gen.SetLevel(level)
	}
	return gen, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	return generateTag(cmd, args[0])
}

// generateTag runs the full pipeline for one payload and writes the
// requested output files
func generateTag(cmd *cobra.Command, payload string) error {
	gen, err := newTagGenerator(cmd)
	if err != nil {
		return err
	}

	result, err := gen.Generate(payload)
	if err != nil {
		return fmt.Errorf("failed to generate model: %w", err)
	}
	logger.Info("generated model",
		zap.Int("grid_size", result.GridSize),
		zap.Int("dark_modules", result.DarkModules),
		zap.Int("solids", result.SolidCount))

	sink, suggested := outputSink(outputPath)
	return writeTag(gen, payload, sink, suggested)
}

// writeTag serializes the generated scene into the sink, honoring the
// format flag, and renders the PNG preview when one was requested
func writeTag(gen *app.Generator, payload string, sink stl.Sink, suggested string) error {
	name := strings.TrimSuffix(suggested, filepath.Ext(suggested))
	model := gen.ExportModel(name)

	var data []byte
	if asciiOutput {
		var buf bytes.Buffer
		if err := stl.WriteASCII(&buf, model); err != nil {
			return err
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = model.Bytes()
		if err != nil {
			return err
		}
	}

	if err := sink.Write(data, suggested); err != nil {
		return err
	}
	logger.Info("wrote STL",
		zap.String("path", outputPath),
		zap.Int("triangles", model.TriangleCount()),
		zap.Int("bytes", len(data)))

	if pngPath != "" {
		png, err := qr.PNG(payload, gen.Level(), pngSizePx)
		if err != nil {
			return fmt.Errorf("failed to render PNG: %w", err)
		}
		if err := os.WriteFile(pngPath, png, 0644); err != nil {
			return fmt.Errorf("failed to write PNG: %w", err)
		}
		logger.Info("wrote PNG preview", zap.String("path", pngPath))
	}

	return nil
}

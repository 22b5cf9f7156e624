package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/philipparndt/qrstl/internal/app"
	"github.com/philipparndt/qrstl/internal/logger"
	"github.com/philipparndt/qrstl/pkg/stl"
	"github.com/philipparndt/qrstl/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch [payload-file]",
	Short: "Regenerate the STL whenever a payload file changes",
	Long: `Read the QR payload from a text file and rewrite the STL output every
time the file changes. Format and preview flags apply to every rewrite.
Runs until interrupted. A payload that fails to encode keeps the
previous output in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addTagFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	payloadPath := args[0]

	gen, err := newTagGenerator(cmd)
	if err != nil {
		return err
	}

	sink, suggested := outputSink(outputPath)
	regenerate := watchRegenerator(gen, payloadPath, sink, suggested)

	// The initial build must succeed; later failures only log and keep
	// the previous output.
	if err := regenerate(); err != nil {
		return err
	}

	fw, err := watcher.New(payloadPath, watcher.DefaultDebounce,
		func(string) {
			if err := regenerate(); err != nil {
				logger.Error("regeneration failed", zap.Error(err))
			}
		},
		func(err error) {
			logger.Error("watcher error", zap.Error(err))
		})
	if err != nil {
		return err
	}
	defer fw.Close()
	fw.Start()

	logger.Info("watching payload file",
		zap.String("path", fw.Path()),
		zap.String("output", outputPath))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	logger.Info("stopping")
	return nil
}

// watchRegenerator builds the callback that re-reads the payload file
// and rewrites the requested outputs. Every run goes through the same
// write path as a one-shot generate.
func watchRegenerator(gen *app.Generator, payloadPath string, sink stl.Sink, suggested string) func() error {
	return func() error {
		raw, err := os.ReadFile(payloadPath)
		if err != nil {
			return fmt.Errorf("failed to read payload file: %w", err)
		}
		payload := strings.TrimSpace(string(raw))
		if payload == "" {
			return fmt.Errorf("payload file %s is empty", payloadPath)
		}

		result, err := gen.Generate(payload)
		if err != nil {
			return fmt.Errorf("failed to generate model: %w", err)
		}

		if err := writeTag(gen, payload, sink, suggested); err != nil {
			return err
		}

		logger.Info("regenerated model",
			zap.Int("grid_size", result.GridSize),
			zap.Int("solids", result.SolidCount),
			zap.String("output", outputPath))
		return nil
	}
}

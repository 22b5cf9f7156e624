package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/qrstl/internal/config"
	"github.com/philipparndt/qrstl/internal/logger"
	"github.com/philipparndt/qrstl/version"
	"github.com/spf13/cobra"
)

var (
	profilePath string
	logLevel    string

	// profile is loaded before any subcommand runs
	profile *config.Profile
)

var rootCmd = &cobra.Command{
	Use:   "qrstl",
	Short: "Generate 3D printable QR code tags as STL files",
	Long: `qrstl encodes text or WiFi credentials as a QR code and builds a
3D printable tag from it: raised modules on a base plate, exported as
binary STL. It can also inspect STL files and regenerate a tag whenever
a payload file changes.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		profile, err = config.Load(profilePath)
		if err != nil {
			return err
		}

		level := profile.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		return logger.Init(level, profile.Logging.LogFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "",
		"profile YAML with tag dimensions and settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"override the profile log level (debug, info, warn, error)")
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

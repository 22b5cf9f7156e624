// Package config handles tag profile loading and management.
package config

import (
	"github.com/philipparndt/qrstl/pkg/mesh"
	"github.com/philipparndt/qrstl/pkg/qr"
)

// Profile holds all tag generation settings.
type Profile struct {
	Tag     TagConfig     `yaml:"tag"`
	QR      QRConfig      `yaml:"qr"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// TagConfig holds the physical tag dimensions in millimeters.
type TagConfig struct {
	FootprintMM       float64 `yaml:"footprint_mm"`
	BorderMM          float64 `yaml:"border_mm"`
	ModuleThicknessMM float64 `yaml:"module_thickness_mm"`
	BaseThicknessMM   float64 `yaml:"base_thickness_mm"`
}

// QRConfig holds symbol encoding settings.
type QRConfig struct {
	ECC string `yaml:"ecc"` // low, medium, quartile or high
}

// ExportConfig holds export settings.
type ExportConfig struct {
	SuggestedName string `yaml:"suggested_name"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Profile with the stock tag dimensions from
// mesh.DefaultOptions.
func Default() *Profile {
	opts := mesh.DefaultOptions()
	return &Profile{
		Tag: TagConfig{
			FootprintMM:       opts.FootprintMM,
			BorderMM:          opts.BorderMM,
			ModuleThicknessMM: opts.ModuleThicknessMM,
			BaseThicknessMM:   opts.BaseThicknessMM,
		},
		QR: QRConfig{
			ECC: "low",
		},
		Export: ExportConfig{
			SuggestedName: "wifi-qr.stl",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// BuildOptions converts the tag dimensions into mesh build options.
func (p *Profile) BuildOptions() mesh.Options {
	return mesh.Options{
		FootprintMM:       p.Tag.FootprintMM,
		BorderMM:          p.Tag.BorderMM,
		ModuleThicknessMM: p.Tag.ModuleThicknessMM,
		BaseThicknessMM:   p.Tag.BaseThicknessMM,
	}
}

// RecoveryLevel parses the configured error correction level.
func (p *Profile) RecoveryLevel() (qr.RecoveryLevel, error) {
	return qr.ParseLevel(p.QR.ECC)
}

package qr

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrEncodingFailed reports that the symbol encoder rejected a payload,
// typically because it exceeds the capacity of the largest QR version.
var ErrEncodingFailed = errors.New("QR encoding failed")

// RecoveryLevel selects the error-correction strength of the symbol.
// Stronger recovery survives more surface damage on the printed model
// but needs more modules for the same payload.
type RecoveryLevel int

const (
	LevelLow      RecoveryLevel = iota // ~7% recovery
	LevelMedium                        // ~15% recovery
	LevelQuartile                      // ~25% recovery
	LevelHigh                          // ~30% recovery
)

// String returns the level name as accepted by ParseLevel
func (l RecoveryLevel) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelQuartile:
		return "quartile"
	case LevelHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level name to a RecoveryLevel
func ParseLevel(name string) (RecoveryLevel, error) {
	switch name {
	case "low":
		return LevelLow, nil
	case "medium":
		return LevelMedium, nil
	case "quartile":
		return LevelQuartile, nil
	case "high":
		return LevelHigh, nil
	default:
		return LevelLow, fmt.Errorf("unknown recovery level %q (want low, medium, quartile or high)", name)
	}
}

// libraryLevel maps to the encoder's own level constants
func (l RecoveryLevel) libraryLevel() qrcode.RecoveryLevel {
	switch l {
	case LevelMedium:
		return qrcode.Medium
	case LevelQuartile:
		return qrcode.High
	case LevelHigh:
		return qrcode.Highest
	default:
		return qrcode.Low
	}
}

// Encode runs a payload through the QR encoder and returns the module
// grid. The encoder's quiet-zone border is left off: the blank margin
// around the printed symbol comes from the base plate, not from empty
// modules.
func Encode(text string, level RecoveryLevel) (*Grid, error) {
	code, err := qrcode.New(text, level.libraryLevel())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}
	code.DisableBorder = true

	grid, err := NewGrid(code.Bitmap())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}
	return grid, nil
}

// PNG renders the payload as a 2D raster image of the given pixel size,
// for previewing a symbol without printing it.
func PNG(text string, level RecoveryLevel, sizePx int) ([]byte, error) {
	data, err := qrcode.Encode(text, level.libraryLevel(), sizePx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}
	return data, nil
}

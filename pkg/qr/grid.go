// Package qr wraps the external QR symbol encoder behind the square
// module grid consumed by the geometry builder.
package qr

import (
	"errors"
	"fmt"
)

// Grid is a square matrix of barcode modules. True means dark. A grid
// is immutable once constructed.
type Grid struct {
	size    int
	modules [][]bool
}

// NewGrid wraps a module matrix. Rows are y, columns are x. The matrix
// must be square and non-empty.
func NewGrid(modules [][]bool) (*Grid, error) {
	size := len(modules)
	if size == 0 {
		return nil, errors.New("module grid is empty")
	}

	copied := make([][]bool, size)
	for y, row := range modules {
		if len(row) != size {
			return nil, fmt.Errorf("module grid is not square: row %d has %d modules, want %d", y, len(row), size)
		}
		copied[y] = make([]bool, size)
		copy(copied[y], row)
	}

	return &Grid{size: size, modules: copied}, nil
}

// Size returns the number of modules along one side
func (g *Grid) Size() int {
	return g.size
}

// At reports whether the module at (x, y) is dark. Coordinates outside
// the grid read as light.
func (g *Grid) At(x, y int) bool {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return false
	}
	return g.modules[y][x]
}

// DarkCount returns the number of dark modules in the grid
func (g *Grid) DarkCount() int {
	count := 0
	for _, row := range g.modules {
		for _, dark := range row {
			if dark {
				count++
			}
		}
	}
	return count
}

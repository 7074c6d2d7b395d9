package game

import (
	"github.com/faiface/pixel"
)

type CellState int

const (
	Unknown CellState = iota
	Prime
	Composite
)

type RunState int

const (
	Running RunState = iota
	Paused
	Done
)

const (
	// Digit keys 1-9 select side lengths in [MinDimension, MaxDimension].
	MinDimension = 10
	MaxDimension = 18
)

// DigitDimension maps a digit key (1-9) to a grid side length (10-18).
func DigitDimension(digit uint) uint {
	return digit + MinDimension - 1
}

const (
	squareAlpha   = 128.0 / 255
	gridLineAlpha = 150.0 / 255
	gridLineWidth = 4.0
)

// Palette holds the draw colors for the grid and its cells.
type Palette struct {
	Background pixel.RGBA
	GridLine   pixel.RGBA
	Prime      pixel.RGBA
	Composite  pixel.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: pixel.RGB(0.2, 0.2, 0.2),
		GridLine:   pixel.RGB(0, 230.0/255, 0),
		Prime:      pixel.RGB(1, 51.0/255, 51.0/255),
		Composite:  pixel.RGB(153.0/255, 1, 1),
	}
}

func (palette Palette) cellColor(state CellState) (pixel.RGBA, bool) {
	switch state {
	case Prime:
		return palette.Prime, true
	case Composite:
		return palette.Composite, true
	default:
		return pixel.RGBA{}, false
	}
}

package game

import (
	"fmt"
)

// Cell represents one numbered square of the grid and its sieve
// classification.
type Cell struct {
	value uint
	x, y  uint

	state CellState
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%d)", cell.value)
}

func (cell *Cell) Value() uint {
	return cell.value
}

func (cell *Cell) X() uint {
	return cell.x
}

func (cell *Cell) Y() uint {
	return cell.y
}

func (cell *Cell) State() CellState {
	return cell.state
}

// setState classifies the cell. Classifications are final: a cell that is
// already Prime or Composite never changes again.
func (cell *Cell) setState(state CellState) {
	if cell.state == Unknown && state != Unknown {
		cell.state = state
	}
}

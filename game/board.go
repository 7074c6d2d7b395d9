package game

// Board owns the grid of numbered cells and the sieve that classifies them.
// Values 1..dimension² are laid out row-major from the top-left, one per
// cell. The event loop holds exactly one live Board at a time and replaces it
// wholesale when the grid is resized.
type Board struct {
	dimension uint // cells per side
	cells     [][]Cell

	sieve *sieve

	state     RunState
	numPrimes uint
}

func createBoard(dimension uint) *Board {
	board := &Board{
		dimension: dimension,
		cells:     make([][]Cell, dimension),
		sieve:     newSieve(dimension * dimension),
		state:     Running,
	}

	value := uint(1)
	for y := range board.cells {
		row := make([]Cell, dimension)
		board.cells[y] = row

		for x := range row {
			cell := &row[x]
			cell.value = value
			cell.x, cell.y = uint(x), uint(y)
			cell.state = Unknown
			value++
		}
	}

	return board
}

func (board *Board) Dimension() uint {
	return board.dimension
}

// Limit is the largest value on the grid, dimension².
func (board *Board) Limit() uint {
	return board.sieve.Limit()
}

func (board *Board) NumCells() uint {
	return board.dimension * board.dimension
}

func (board *Board) State() RunState {
	return board.state
}

func (board *Board) Candidate() uint {
	return board.sieve.Candidate()
}

func (board *Board) NumPrimes() uint {
	return board.numPrimes
}

func (board *Board) CellAt(x, y uint) *Cell {
	if x < board.dimension && y < board.dimension {
		return &board.cells[y][x]
	}
	return nil
}

func (board *Board) CellForValue(value uint) *Cell {
	if value < 1 || value > board.Limit() {
		return nil
	}
	idx := value - 1
	return &board.cells[idx/board.dimension][idx%board.dimension]
}

// Step advances the sieve by one unit and returns the cell touched this
// tick, or nil once the sieve is done. Done is sticky: further calls never
// change any cell.
func (board *Board) Step() *Cell {
	if board.state == Done {
		return nil
	}

	step, ok := board.sieve.Step()
	if !ok {
		board.state = Done
		return nil
	}

	cell := board.CellForValue(step.value)
	if step.state == Prime {
		board.numPrimes++
	}
	cell.setState(step.state)

	if board.sieve.Done() {
		board.state = Done
	}
	return cell
}

// TogglePaused suspends or resumes the animation. A finished board stays
// finished.
func (board *Board) TogglePaused() {
	switch board.state {
	case Running:
		board.state = Paused
	case Paused:
		board.state = Running
	}
}

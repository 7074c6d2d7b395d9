package game

import (
	"fmt"
	"strconv"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/gammazero/deque"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const windowTitle = "Sieve of Eratosthenes"

// digitKeys in ascending order; key at index i selects DigitDimension(i+1).
var digitKeys = []pixelgl.Button{
	pixelgl.Key1,
	pixelgl.Key2,
	pixelgl.Key3,
	pixelgl.Key4,
	pixelgl.Key5,
	pixelgl.Key6,
	pixelgl.Key7,
	pixelgl.Key8,
	pixelgl.Key9,
}

// highlight marks a freshly classified cell; the overlay fades out over
// HighlightDuration, producing the visible sweep across the grid.
type highlight struct {
	cell       *Cell
	firstShown time.Time
}

// boardGeometry maps grid coordinates onto the window. The grid fills the
// window; values run row-major from the top-left.
type boardGeometry struct {
	bounds   pixel.Rect
	cellSize float64
}

func newBoardGeometry(bounds pixel.Rect, dimension uint) boardGeometry {
	return boardGeometry{
		bounds:   bounds,
		cellSize: bounds.W() / float64(dimension),
	}
}

func (geometry boardGeometry) cellRect(x, y uint) pixel.Rect {
	left := geometry.bounds.Min.X + float64(x)*geometry.cellSize
	top := geometry.bounds.Max.Y - float64(y)*geometry.cellSize
	return pixel.R(left, top-geometry.cellSize, left+geometry.cellSize, top)
}

// Run opens the window and drives the animation. Each frame handles input
// first, then at most one timer tick (one sieve step), then a full redraw,
// in that fixed order.
func Run(config GameConfig) {
	cfg := pixelgl.WindowConfig{
		Title: windowTitle,
		Bounds: pixel.R(
			0, 0,
			float64(config.Dimensions), float64(config.Dimensions),
		),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		log.WithError(err).Fatal("could not create window; OpenGL and GLFW must be available")
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)

	var (
		board         *Board
		geometry      boardGeometry
		labels        []cellLabel
		labelScale    float64
		highlights    deque.Deque
		announcedDone bool
	)

	resetBoard := func(dimension uint) {
		board = createBoard(dimension)
		geometry = newBoardGeometry(win.Bounds(), dimension)
		labels, labelScale = makeLabels(board, geometry, basicAtlas)
		highlights = deque.Deque{}
		announcedDone = false

		log.WithFields(log.Fields{
			"dimension": dimension,
			"limit":     board.Limit(),
		}).Info("grid reset")
	}
	resetBoard(config.StartDimension)

	step := func() {
		if cell := board.Step(); cell != nil {
			highlights.PushBack(highlight{cell: cell, firstShown: time.Now()})
		}

		if board.State() == Done && !announcedDone {
			announcedDone = true
			log.WithFields(log.Fields{
				"limit":  board.Limit(),
				"primes": board.NumPrimes(),
			}).Info("sieve complete")
		}
	}

	var (
		tick   = time.Tick(time.Second / time.Duration(config.FrameRate))
		second = time.Tick(time.Second)
	)

	for !win.Closed() {
		win.Update()
		win.Clear(config.Palette.Background)

		if win.JustPressed(pixelgl.KeyQ) {
			log.Info("the Q key was pressed; quitting")
			win.SetClosed(true)
			continue
		}

		for i, key := range digitKeys {
			if win.JustPressed(key) {
				dimension := DigitDimension(uint(i + 1))
				log.WithField("dimension", dimension).Debug("dimension key pressed")

				// Re-selecting the current dimension does not restart the
				// animation.
				if dimension != board.Dimension() {
					resetBoard(dimension)
				}
			}
		}

		// Pause with Space
		if win.JustPressed(pixelgl.KeySpace) {
			board.TogglePaused()
		}

		// Perform single step while paused with Right Arrow
		if board.State() == Paused && (win.JustPressed(pixelgl.KeyRight) || win.Repeated(pixelgl.KeyRight)) {
			step()
		}

		// Replay the finished animation with Enter
		if board.State() == Done && win.JustPressed(pixelgl.KeyEnter) {
			resetBoard(board.Dimension())
		}

		if board.State() == Running {
			select {
			case <-tick:
				step()
			default:
			}
		}

		drawCells(win, board, geometry, config.Palette)
		drawGridLines(win, board, geometry, config.Palette)
		drawLabels(win, labels, labelScale)
		drawHighlights(win, &highlights, geometry, config)

		select {
		case <-second:
			win.SetTitle(progressTitle(board))
		default:
		}
	}
}

func progressTitle(board *Board) string {
	switch board.State() {
	case Done:
		return fmt.Sprintf("%s | N=%d | done: %d primes", windowTitle, board.Limit(), board.NumPrimes())
	case Paused:
		return fmt.Sprintf("%s | N=%d | paused", windowTitle, board.Limit())
	default:
		return fmt.Sprintf("%s | N=%d | candidate=%d primes=%d",
			windowTitle, board.Limit(), board.Candidate(), board.NumPrimes())
	}
}

func drawCells(win *pixelgl.Window, board *Board, geometry boardGeometry, palette Palette) {
	imd := imdraw.New(nil)

	for y := uint(0); y < board.Dimension(); y++ {
		for x := uint(0); x < board.Dimension(); x++ {
			color, marked := palette.cellColor(board.CellAt(x, y).State())
			if !marked {
				continue
			}

			rect := geometry.cellRect(x, y)
			imd.Color = color.Mul(pixel.Alpha(squareAlpha))
			imd.Push(rect.Min, rect.Max)
			imd.Rectangle(0) // 0 = filled
		}
	}

	imd.Draw(win)
}

func drawGridLines(win *pixelgl.Window, board *Board, geometry boardGeometry, palette Palette) {
	imd := imdraw.New(nil)
	imd.Color = palette.GridLine.Mul(pixel.Alpha(gridLineAlpha))

	bounds := geometry.bounds
	for i := uint(1); i < board.Dimension(); i++ {
		offset := float64(i) * geometry.cellSize

		imd.Push(
			pixel.V(bounds.Min.X+offset, bounds.Min.Y),
			pixel.V(bounds.Min.X+offset, bounds.Max.Y),
		)
		imd.Line(gridLineWidth)

		imd.Push(
			pixel.V(bounds.Min.X, bounds.Min.Y+offset),
			pixel.V(bounds.Max.X, bounds.Min.Y+offset),
		)
		imd.Line(gridLineWidth)
	}

	imd.Draw(win)
}

type cellLabel struct {
	text *text.Text
	pos  pixel.Vec
}

// makeLabels renders one number label per cell, anchored at the cell center.
// The returned scale shrinks as the grid grows, so labels stay inside their
// cells at every dimension.
func makeLabels(board *Board, geometry boardGeometry, atlas *text.Atlas) ([]cellLabel, float64) {
	scale := float64(34-int(board.Dimension())) / float64(basicfont.Face7x13.Height)

	labels := make([]cellLabel, 0, board.NumCells())
	for y := uint(0); y < board.Dimension(); y++ {
		for x := uint(0); x < board.Dimension(); x++ {
			cell := board.CellAt(x, y)
			str := strconv.FormatUint(uint64(cell.Value()), 10)

			t := text.New(pixel.ZV, atlas)
			t.Color = colornames.White
			bounds := t.BoundsOf(str)
			t.Dot = pixel.V(-bounds.W()/2, -bounds.H()/2)
			t.WriteString(str)

			labels = append(labels, cellLabel{
				text: t,
				pos:  geometry.cellRect(x, y).Center(),
			})
		}
	}
	return labels, scale
}

func drawLabels(win *pixelgl.Window, labels []cellLabel, scale float64) {
	for _, label := range labels {
		label.text.Draw(win, pixel.IM.Scaled(pixel.ZV, scale).Moved(label.pos))
	}
}

func drawHighlights(win *pixelgl.Window, highlights *deque.Deque, geometry boardGeometry, config GameConfig) {
	now := time.Now()

	// Highlights are queued in step order, so expired ones are all at the
	// front.
	for highlights.Len() > 0 {
		front := highlights.Front().(highlight)
		if now.Sub(front.firstShown) > config.HighlightDuration {
			highlights.PopFront()
		} else {
			break
		}
	}
	if highlights.Len() == 0 {
		return
	}

	imd := imdraw.New(nil)
	for i := 0; i < highlights.Len(); i++ {
		h := highlights.At(i).(highlight)

		progress := 1 - float64(now.Sub(h.firstShown))/float64(config.HighlightDuration)
		alpha := config.HighlightBaseAlpha * InOutCubic(progress)

		rect := geometry.cellRect(h.cell.X(), h.cell.Y())
		imd.Color = pixel.RGB(1, 1, 1).Mul(pixel.Alpha(alpha))
		imd.Push(rect.Min, rect.Max)
		imd.Rectangle(0)
	}
	imd.Draw(win)
}

func InOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	} else {
		t -= 2
		return 0.5 * (t*t*t + 2)
	}
}

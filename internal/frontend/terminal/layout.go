package terminal

// Die boxes take a tenth of the screen height and margins a fiftieth,
// with widths doubled so boxes look square in terminal cells.
const (
	minDieHeight  = 3
	minMarginY    = 1
	heightDivisor = 10
	marginDivisor = 50
)

// Layout places dice on a grid filled from the bottom row up
type Layout struct {
	Width  int
	Height int

	DieWidth  int
	DieHeight int
	MarginX   int
	MarginY   int

	PerRow int
	XStart int
}

// NewLayout computes the dice grid for a w x h screen
func NewLayout(w, h int) Layout {
	l := Layout{
		Width:     w,
		Height:    h,
		DieHeight: max(minDieHeight, h/heightDivisor),
		MarginY:   max(minMarginY, h/marginDivisor),
	}
	l.DieWidth = l.DieHeight * 2
	l.MarginX = l.MarginY * 2

	l.PerRow = max(1, (w-l.MarginX)/(l.DieWidth+l.MarginX))
	total := l.PerRow*l.DieWidth + (l.PerRow-1)*l.MarginX
	l.XStart = max(0, (w-total)/2)

	return l
}

// Position returns the top-left cell of die i
func (l Layout) Position(i int) (x, y int) {
	row := i / l.PerRow
	col := i % l.PerRow

	x = l.XStart + col*(l.DieWidth+l.MarginX)
	y = l.Height - (row+1)*(l.DieHeight+l.MarginY)
	return x, y
}

// Rows returns how many grid rows n dice occupy
func (l Layout) Rows(n int) int {
	if n <= 0 {
		return 0
	}
	return (n-1)/l.PerRow + 1
}

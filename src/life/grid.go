package life

import (
	"github.com/pkg/errors"
)

// Cell is a single grid position, alive or dead.
type Cell bool

var (
	// ErrInvalidDimension is reported by the constructors when a grid
	// dimension is not positive.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfRange is reported when a coordinate falls outside the grid.
	// Coordinates are never clamped or wrapped.
	ErrOutOfRange = errors.New("coordinates out of range")
)

// Grid holds one generation of a bounded Life universe.
// Dimensions are fixed at construction and every cell is either alive
// or dead. Step replaces the whole generation at once, computed against
// the prior generation only.
// A Grid is not safe for concurrent use, the owner serializes access.
type Grid struct {
	width  int
	height int
	cells  [][]Cell

	engine string
	//step is redefined by the engine constructors
	step func() (live int, changed bool)
}

func newGrid(width int, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "%vx%v", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  createCells(width, height),
	}, nil
}

//createCells allocates the field rows from a single backing slice
func createCells(width int, height int) [][]Cell {
	cells := make([][]Cell, height)
	b := make([]Cell, width*height)
	for i := range cells {
		start := width * i
		cells[i] = b[start : start+width : start+width]
	}
	return cells
}

//Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

//Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

//Engine returns the name of the step engine the grid was built with
func (g *Grid) Engine() string {
	return g.engine
}

func (g *Grid) checkRange(row int, col int) error {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return errors.Wrapf(ErrOutOfRange, "(%v,%v) on a %vx%v field", row, col, g.width, g.height)
	}
	return nil
}

//Get returns the current state of the cell at row, col
func (g *Grid) Get(row int, col int) (bool, error) {
	if err := g.checkRange(row, col); err != nil {
		return false, err
	}
	return bool(g.cells[row][col]), nil
}

//Set sets the cell at row, col to alive or dead
func (g *Grid) Set(row int, col int, alive bool) error {
	if err := g.checkRange(row, col); err != nil {
		return err
	}
	g.cells[row][col] = Cell(alive)
	return nil
}

//Toggle inverses the cell state at row, col
func (g *Grid) Toggle(row int, col int) error {
	if err := g.checkRange(row, col); err != nil {
		return err
	}
	g.cells[row][col] = !g.cells[row][col]
	return nil
}

//Step calculates the next generation and writes it to the grid,
//returns the number of live cells and whether anything changed
func (g *Grid) Step() (live int, changed bool) {
	return g.step()
}

//Clear kills all cells
func (g *Grid) Clear() {
	g.walk(func(row int, col int, e Cell) {
		g.cells[row][col] = false
	})
}

//LiveCells calculates the count of live cells
func (g *Grid) LiveCells() int {
	liveCells := 0
	g.walk(func(row int, col int, e Cell) {
		if bool(e) {
			liveCells++
		}
	})
	return liveCells
}

//walk walks the entire field and calls the cb function for each cell
func (g *Grid) walk(cb func(row int, col int, entity Cell)) {
	for row := range g.cells {
		for col := range g.cells[row] {
			cb(row, col, g.cells[row][col])
		}
	}
}

//liveNeighbors counts live cells among the 8 adjacent positions,
//positions outside the field count as dead
func (g *Grid) liveNeighbors(row int, col int) int {
	count := 0
	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	for nr := minRow; nr <= maxRow; nr++ {
		for nc := minCol; nc <= maxCol; nc++ {
			//skip my position
			if nr == row && nc == col {
				continue
			}
			if g.cells[nr][nc] {
				count++
			}
		}
	}
	return count
}

// NextState applies the standard rule to one cell: birth on exactly 3
// live neighbors, survival on 2 or 3, death otherwise.
func NextState(alive bool, liveNeighbors int) bool {
	return liveNeighbors == 3 || (alive && liveNeighbors == 2)
}

//cellNextState calculates the next state for the cell
func (g *Grid) cellNextState(row int, col int) bool {
	return NextState(bool(g.cells[row][col]), g.liveNeighbors(row, col))
}

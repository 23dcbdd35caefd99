package life

import (
	"golang.org/x/sync/errgroup"
)

/*
	Engine constructors. Every engine produces exactly the same
	generations and differs only in how the next-generation buffer is
	managed: New keeps a full second buffer, NewSmallBuff keeps the
	current and previous rows only, NewParallel splits the rows between
	goroutines. Step always returns after the whole generation is
	written back, so the caller never observes a partial update.
*/

const (
	DefWorkers          = 10 //default workers for the parallel engine
	DefMinRowsPerWorker = 3  //minimum rows for one worker
)

// New creates a grid with the double-buffer engine, all cells dead.
func New(width int, height int) (*Grid, error) {
	g, err := newGrid(width, height)
	if err != nil {
		return nil, err
	}
	g.engine = "simple"
	buff := createCells(width, height)
	g.step = func() (int, bool) { return g.stepDoubleBuff(buff) }
	return g, nil
}

func (g *Grid) stepDoubleBuff(buff [][]Cell) (live int, changed bool) {
	for row := range g.cells {
		for col := range g.cells[row] {
			next := g.cellNextState(row, col)
			if next {
				live++
			}
			changed = changed || next != bool(g.cells[row][col])
			buff[row][col] = Cell(next)
		}
	}
	for row := range g.cells {
		copy(g.cells[row], buff[row])
	}
	return
}

// NewSmallBuff creates a grid whose engine keeps only the current and
// previous result rows. The first buffer row is written back to the
// field as calculating moves to the next row, which reduces memory
// copying without reading any already-updated neighbor.
func NewSmallBuff(width int, height int) (*Grid, error) {
	g, err := newGrid(width, height)
	if err != nil {
		return nil, err
	}
	g.engine = "smallBuff"
	buff := createCells(width, 2)
	g.step = func() (int, bool) { return g.stepSmallBuff(buff) }
	return g, nil
}

func (g *Grid) stepSmallBuff(buff [][]Cell) (live int, changed bool) {
	for row := range g.cells {
		for col := range g.cells[row] {
			next := g.cellNextState(row, col)
			if next {
				live++
			}
			changed = changed || next != bool(g.cells[row][col])
			buff[1][col] = Cell(next)
		}
		if row-1 >= 0 {
			copy(g.cells[row-1], buff[0])
		}
		buff[0], buff[1] = buff[1], buff[0]
	}
	copy(g.cells[g.height-1], buff[0])
	return
}

//rowSpan describes the working area for one parallel worker
type rowSpan struct {
	row1    int //first row, inclusive
	row2    int //last row, inclusive
	live    int
	changed bool
}

// NewParallel creates a grid whose engine splits the rows between
// worker goroutines. Step still completes before returning.
func NewParallel(width int, height int) (*Grid, error) {
	g, err := newGrid(width, height)
	if err != nil {
		return nil, err
	}
	g.engine = "parallel"
	buff := createCells(width, height)

	rowsPerWorker := height / DefWorkers
	if rowsPerWorker < DefMinRowsPerWorker {
		rowsPerWorker = DefMinRowsPerWorker
	} else if rowsPerWorker*DefWorkers < height {
		rowsPerWorker++
	}
	spans := make([]rowSpan, 0, DefWorkers)
	for row1 := 0; row1 < height; row1 += rowsPerWorker {
		spans = append(spans, rowSpan{row1: row1, row2: min(row1+rowsPerWorker-1, height-1)})
	}

	g.step = func() (int, bool) { return g.stepParallel(buff, spans) }
	return g, nil
}

func (g *Grid) stepParallel(buff [][]Cell, spans []rowSpan) (live int, changed bool) {
	var eg errgroup.Group
	for i := range spans {
		span := &spans[i]
		eg.Go(func() error {
			span.live = 0
			span.changed = false
			for row := span.row1; row <= span.row2; row++ {
				for col := range g.cells[row] {
					next := g.cellNextState(row, col)
					if next {
						span.live++
					}
					span.changed = span.changed || next != bool(g.cells[row][col])
					buff[row][col] = Cell(next)
				}
			}
			return nil
		})
	}
	_ = eg.Wait() //the workers never return an error

	for i := range spans {
		live += spans[i].live
		changed = changed || spans[i].changed
	}
	for row := range g.cells {
		copy(g.cells[row], buff[row])
	}
	return
}

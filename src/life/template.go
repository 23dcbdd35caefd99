package life

import "math/rand"

//Template represents a seeding template which can be used to settle the
//grid with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [row, col] coordinates
}

//Builtin classic patterns, placed near the origin
var (
	TemplateBlinker = Template{
		"blinker",
		"period-2 oscillator, three cells in a row",
		[][]int{{1, 1}, {1, 2}, {1, 3}},
	}
	TemplateBlock = Template{
		"block",
		"2x2 still life",
		[][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}},
	}
	TemplateGlider = Template{
		"glider",
		"the smallest spaceship",
		[][]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	}
)

//Settle turns on the cells at the given [row, col] coordinates,
//coordinates outside the field are skipped
func (g *Grid) Settle(vc [][]int) {
	for _, v := range vc {
		if v[0] < 0 || v[0] >= g.height || v[1] < 0 || v[1] >= g.width {
			continue
		}
		g.cells[v[0]][v[1]] = true
	}
}

//SettleTemplate places the template pattern shifted by rowOff, colOff
func (g *Grid) SettleTemplate(tmpl Template, rowOff int, colOff int) {
	for _, v := range tmpl.Coordinates {
		row := v[0] + rowOff
		col := v[1] + colOff
		if row < 0 || row >= g.height || col < 0 || col >= g.width {
			continue
		}
		g.cells[row][col] = true
	}
}

//Randomize fills the field with live cells at the given density
func (g *Grid) Randomize(density float64) {
	g.walk(func(row int, col int, e Cell) {
		g.cells[row][col] = Cell(rand.Float64() < density)
	})
}

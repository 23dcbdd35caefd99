package life

import (
	"math/rand"
	"sort"
	"testing"
)

var (
	testTemplate = Template{"ts1", "", [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}}

	engines = map[string]func(width int, height int) (*Grid, error){
		"simple":    New,
		"smallBuff": NewSmallBuff,
		"parallel":  NewParallel,
	}
)

func engineNames() (engineNames []string) {
	engineNames = make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)
	return
}

func snapshot(t *testing.T, g *Grid) [][]bool {
	t.Helper()
	rows := make([][]bool, g.Height())
	for row := range rows {
		rows[row] = make([]bool, g.Width())
		for col := range rows[row] {
			alive, err := g.Get(row, col)
			if err != nil {
				t.Fatal(err)
			}
			rows[row][col] = alive
		}
	}
	return rows
}

func equalSnapshots(a [][]bool, b [][]bool) bool {
	for row := range a {
		for col := range a[row] {
			if a[row][col] != b[row][col] {
				return false
			}
		}
	}
	return true
}

func forEachEngine(t *testing.T, width int, height int, fn func(t *testing.T, g *Grid)) {
	for _, e := range engineNames() {
		t.Run(e, func(t *testing.T) {
			g, err := engines[e](width, height)
			if err != nil {
				t.Fatal(err)
			}
			fn(t, g)
		})
	}
}

func TestStepAllDead(t *testing.T) {
	//no spontaneous birth
	forEachEngine(t, 8, 6, func(t *testing.T, g *Grid) {
		live, changed := g.Step()
		if live != 0 || changed {
			t.Errorf("step on a dead field: live=%v changed=%v", live, changed)
		}
	})
}

func TestLonelyCellDies(t *testing.T) {
	forEachEngine(t, 5, 5, func(t *testing.T, g *Grid) {
		if err := g.Set(2, 2, true); err != nil {
			t.Fatal(err)
		}
		live, changed := g.Step()
		if live != 0 || !changed {
			t.Errorf("a lonely cell must die: live=%v changed=%v", live, changed)
		}
	})
}

func TestBlinkerOscillates(t *testing.T) {
	forEachEngine(t, 5, 5, func(t *testing.T, g *Grid) {
		g.SettleTemplate(TemplateBlinker, 1, 1) //horizontal bar around the center
		before := snapshot(t, g)

		live, changed := g.Step()
		if live != 3 || !changed {
			t.Fatalf("after one step: live=%v changed=%v", live, changed)
		}
		if equalSnapshots(before, snapshot(t, g)) {
			t.Fatal("the blinker must rotate on the first step")
		}

		live, _ = g.Step()
		if live != 3 {
			t.Fatalf("after two steps: live=%v", live)
		}
		if !equalSnapshots(before, snapshot(t, g)) {
			t.Error("the blinker must return to its original state after two steps")
		}
	})
}

func TestBlockIsStill(t *testing.T) {
	forEachEngine(t, 6, 6, func(t *testing.T, g *Grid) {
		g.SettleTemplate(TemplateBlock, 1, 1)
		before := snapshot(t, g)
		live, changed := g.Step()
		if live != 4 || changed {
			t.Errorf("the block still life: live=%v changed=%v", live, changed)
		}
		if !equalSnapshots(before, snapshot(t, g)) {
			t.Error("the block must be unchanged by a step")
		}
	})
}

func TestAllAliveCorners(t *testing.T) {
	//on a fully alive 3x3 field the corners have 3 neighbors and
	//survive, edges have 5 and the center has 8, all of them die
	forEachEngine(t, 3, 3, func(t *testing.T, g *Grid) {
		g.Randomize(1)
		live, changed := g.Step()
		if live != 4 || !changed {
			t.Fatalf("expected only the 4 corners to survive: live=%v changed=%v", live, changed)
		}
		for _, c := range [][]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}} {
			if alive, _ := g.Get(c[0], c[1]); !alive {
				t.Errorf("corner (%v,%v) must survive", c[0], c[1])
			}
		}
	})
}

func TestEnginesAgree(t *testing.T) {
	//the same settled field must evolve identically on every engine
	const (
		width  = 30
		height = 20
		steps  = 25
	)
	rnd := rand.New(rand.NewSource(1))
	seed := make([][]int, 0, width*height/4)
	for i := 0; i < width*height/4; i++ {
		seed = append(seed, []int{rnd.Intn(height), rnd.Intn(width)})
	}

	grids := map[string]*Grid{}
	for _, e := range engineNames() {
		g, err := engines[e](width, height)
		if err != nil {
			t.Fatal(err)
		}
		g.Settle(seed)
		grids[e] = g
	}

	ref := grids["simple"]
	for i := 0; i < steps; i++ {
		refLive, refChanged := ref.Step()
		for _, e := range engineNames() {
			if e == "simple" {
				continue
			}
			live, changed := grids[e].Step()
			if live != refLive || changed != refChanged {
				t.Fatalf("step %v, engine %v: live=%v changed=%v, simple: live=%v changed=%v",
					i, e, live, changed, refLive, refChanged)
			}
			if !equalSnapshots(snapshot(t, ref), snapshot(t, grids[e])) {
				t.Fatalf("step %v, engine %v: field diverged from the simple engine", i, e)
			}
		}
	}
}

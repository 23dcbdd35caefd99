package view

import (
	"fmt"
	"time"

	"lifegrid/src/sim"
)

//ConsoleOut is the plain progress reporter for the non-interactive mode
type ConsoleOut struct {
	s         *sim.Session
	startTime time.Time
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

func (c *ConsoleOut) Refresh() {
	st := c.s.Status()
	if st.Mode == sim.ModeFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		fmt.Println("\nFinished:")
		fmt.Printf("  Last generation: %v\n", st.Generation)
		fmt.Printf("  Total time: %v\n", totalTime)
		fmt.Printf("  Live cells: %v\n", st.LiveCells)
	} else if st.Mode == sim.ModeRun {
		if st.Generation%10 == 0 {
			fmt.Printf("  Generations done: %v\n", st.Generation)
		}
	}
}

func (c *ConsoleOut) Register(s *sim.Session) {
	c.s = s
	o := s.Options()
	w, h := s.Size()
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", w, h)
	fmt.Printf("  Interval: %v\n", o.Interval)
	fmt.Printf("  Max generations: %v\n", o.MaxSteps)
	fmt.Printf("  Engine: %v\n", s.Engine())
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
}

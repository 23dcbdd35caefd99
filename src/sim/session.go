package sim

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"lifegrid/src/life"
)

//Mode is the session running mode at the concrete moment
type Mode int

const (
	ModeManual Mode = iota
	ModeStep
	ModeRun
	ModeFinished
)

//default options
const (
	DefInterval        = time.Millisecond * 100
	DefMaxSteps        = 1000
	DefMaxSkippedTicks = 5
)

//Options represents the session's configurable options
type Options struct {
	Interval        time.Duration //pause between the steps in run mode
	MaxSteps        int           //0 means no limit
	MaxSkippedTicks int
}

var DefaultOptions = Options{
	Interval:        DefInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
}

//Status represents the status of the session at a concrete moment
type Status struct {
	Generation int
	Mode       Mode
	LiveCells  int
	StepTime   time.Duration
}

//Viewer is the interface to any viewer - the object who can display
//simulation data or control the session
type Viewer interface {
	Refresh()
	Register(s *Session)
	Start()
}

//Session drives one life.Grid from a single control loop.
//All mutation goes through the command channel, so the grid itself
//never sees concurrent callers.
type Session struct {
	grid    *life.Grid
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	gridMu    sync.Mutex
	stateCh   chan Status
	views     []Viewer
	templates map[string]life.Template
	controlCh chan func()
	closeCh   chan bool
}

//New creates a session around the grid and starts its control loop
func New(grid *life.Grid, o *Options, stateCh chan Status) *Session {
	if o == nil {
		o = &DefaultOptions
	}
	s := Session{
		grid:      grid,
		options:   *o,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		stateCh:   stateCh,
		templates: map[string]life.Template{},
	}
	s.refreshView()
	go s.mainLoop()
	return &s
}

//AddTemplate adds the seeding template to the internal storage
//the grid can be populated with this template by call SettleTemplate
func (s *Session) AddTemplate(tmpl life.Template) {
	s.templates[tmpl.Name] = tmpl
}

//SettleTemplate populates the grid with the seeding template
func (s *Session) SettleTemplate(name string) {
	tmpl, ok := s.templates[name]
	if !ok {
		return
	}
	s.gridMu.Lock()
	s.grid.Settle(tmpl.Coordinates)
	live := s.grid.LiveCells()
	s.gridMu.Unlock()
	s.state.LiveCells = live
	s.refreshView()
}

//SettleRandom clears the grid and populates it with random data
//at the given density, only when no run is in progress
func (s *Session) SettleRandom(density float64) {
	if s.state.Mode == ModeManual || s.state.Mode == ModeFinished {
		s.controlCh <- s.clear
		s.controlCh <- func() {
			s.gridMu.Lock()
			s.grid.Randomize(density)
			live := s.grid.LiveCells()
			s.gridMu.Unlock()
			s.state.LiveCells = live
			s.refreshView()
		}
	}
}

//ToggleCell inverses the cell state at row, col
//coordinates outside the field are reported back, never clamped
func (s *Session) ToggleCell(row int, col int) error {
	s.gridMu.Lock()
	err := s.grid.Toggle(row, col)
	live := s.grid.LiveCells()
	s.gridMu.Unlock()
	if err != nil {
		return errors.Wrap(err, "toggle cell")
	}
	s.state.LiveCells = live
	s.refreshView()
	return nil
}

//Cell returns the current state of the cell at row, col
func (s *Session) Cell(row int, col int) (bool, error) {
	s.gridMu.Lock()
	defer s.gridMu.Unlock()
	return s.grid.Get(row, col)
}

//Snapshot returns a copy of the current generation for rendering
func (s *Session) Snapshot() [][]bool {
	s.gridMu.Lock()
	defer s.gridMu.Unlock()
	rows := make([][]bool, s.grid.Height())
	for row := range rows {
		rows[row] = make([]bool, s.grid.Width())
		for col := range rows[row] {
			alive, _ := s.grid.Get(row, col) //in range by construction
			rows[row][col] = alive
		}
	}
	return rows
}

//Size returns the field dimensions
func (s *Session) Size() (width int, height int) {
	return s.grid.Width(), s.grid.Height()
}

//Engine returns the name of the grid's step engine
func (s *Session) Engine() string {
	return s.grid.Engine()
}

//RegisterViewer registers the viewer - the session will call the viewer
//when the state is changed
func (s *Session) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

//StateCh returns the channel with the session's status updates
func (s *Session) StateCh() chan Status {
	return s.stateCh
}

//Status returns current session status represented by Status struct
func (s *Session) Status() Status {
	return s.state.Status
}

//Options returns current session configuration represented by Options struct
func (s *Session) Options() Options {
	return s.options
}

//Run starts the simulation, returns immediately
func (s *Session) Run() {
	s.controlCh <- s.run
}

//Stop stops the simulation, returns immediately
//the Status struct will be written to the stateCh on finish
func (s *Session) Stop() {
	s.controlCh <- s.stop
}

//Step does one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (s *Session) Step() {
	s.controlCh <- s.step
}

//Clear clears the grid (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (s *Session) Clear() {
	s.controlCh <- s.clear
}

//Close stops the control loop, close the channels, returns immediately
func (s *Session) Close() {
	s.closeCh <- true
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (s *Session) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case c = <-s.closeCh:

		}
	}
	close(s.closeCh)
	close(s.controlCh)
}

//switchMode switches the session to the new Mode
//also writes the new state to the stateCh to signal upper control software
func (s *Session) switchMode(to Mode) {
	s.state.Lock()
	s.state.Mode = to
	st := s.state.Status
	s.state.Unlock()
	if s.stateCh != nil {
		s.stateCh <- st
	}
}

//run starts the simulation cycle
//the simulation will stop on Stop() calling or when the boundary conditions are reached
func (s *Session) run() {
	go func() {
		s.switchMode(ModeRun)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := s.state.Mode
			if mode != ModeRun && mode != ModeStep {
				break
			}
			if skipped > s.options.MaxSkippedTicks {
				s.switchMode(ModeFinished)
				break
			}
			//skip the tick if the session is still in the calculation mode
			if mode != ModeStep {
				skipped = 0
				s.controlCh <- func() {
					s.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if s.options.Interval > 0 {
				time.Sleep(s.options.Interval)
			}
		}
	}()
}

//stop stops the running cycle
func (s *Session) stop() {
	if s.state.Mode == ModeRun {
		s.switchMode(ModeManual)
	}
}

//step does the new one generation calculation for the entire grid
//the run finishes on extinction, on an unchanged generation or at the step limit
func (s *Session) step() {
	finished := false
	mode := s.state.Mode
	maxSteps := s.options.MaxSteps
	s.state.Generation++
	defer func() {
		if finished {
			s.switchMode(ModeFinished)
		} else {
			s.switchMode(mode)
		}
		s.refreshView()
	}()

	if maxSteps != 0 && s.state.Generation >= maxSteps {
		finished = true
		return
	}
	s.switchMode(ModeStep)

	s.gridMu.Lock()
	start := time.Now()
	live, changed := s.grid.Step()
	s.state.StepTime = time.Since(start)
	s.gridMu.Unlock()

	s.state.LiveCells = live
	if live == 0 || !changed {
		finished = true
	}
}

//clear clears the grid data, resets all counters
func (s *Session) clear() {
	s.state.Lock()
	s.gridMu.Lock()
	s.state.Generation = 0
	s.state.LiveCells = 0
	s.grid.Clear()
	s.state.Mode = ModeManual
	s.gridMu.Unlock()
	s.state.Unlock()
	s.switchMode(ModeManual)
	s.refreshView()
}

//refreshView calls Refresh event for all registered views
func (s *Session) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}

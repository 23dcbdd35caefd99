package main

import (
	"strings"

	"github.com/integrii/flaggy"

	"lifegrid/src/config"
	"lifegrid/src/life"
	"lifegrid/src/sim"
	"lifegrid/src/view"
)

const configFile = "config.json"

var (
	testSample = [][]int{
		{1, 1}, {1, 2},
		{2, 1}, {2, 2},
		{3, 3},
		{4, 2},
		{4, 3},
		{5, 3},
	}

	engines = map[string]func(width int, height int) (*life.Grid, error){
		"simple":    life.New,
		"smallBuff": life.NewSmallBuff,
		"parallel":  life.NewParallel,
	}
)

func main() {
	cfg := initOptions()

	g, err := engines[cfg.Engine](cfg.Width, cfg.Height)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	var stateCh chan sim.Status

	if !cfg.Interactive {
		stateCh = make(chan sim.Status, 10) //the buffered channel to getting the session status
	}

	o := sim.DefaultOptions
	o.Interval = cfg.Interval
	o.MaxSteps = cfg.MaxSteps
	s := sim.New(g, &o, stateCh)

	s.AddTemplate(
		life.Template{
			Name:        "testSample1",
			Descr:       "the test sample with 3 stable patterns",
			Coordinates: testSample,
		})
	s.AddTemplate(life.TemplateGlider)
	s.AddTemplate(life.TemplateBlinker)

	if cfg.Random {
		s.SettleRandom(cfg.RandomDensity)
	} else {
		s.SettleTemplate("testSample1")
	}

	if cfg.Interactive {
		v := view.NewConsoleUI()
		s.RegisterViewer(v)
		v.Start()
		s.Close()
	} else {
		v := view.NewConsoleOut()
		s.RegisterViewer(v)
		v.Start()
		s.Run()
		for {
			st := <-stateCh
			if st.Mode == sim.ModeFinished {
				break
			}
		}
		s.Close()
		close(stateCh)
	}

}

func initOptions() config.Config {

	cfg, err := config.Load(configFile)
	if err != nil {
		//no config file is fine, the defaults and the flags cover it
		cfg = config.Default()
	}

	engineNames := make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&cfg.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&cfg.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&cfg.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Bool(&cfg.Interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&cfg.Random, "r", "random", "Settle with random data")
	flaggy.Float64(&cfg.RandomDensity, "d", "density", "Density of the random settling, 0..1")
	flaggy.String(&cfg.Engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")

	flaggy.Parse()

	_, ok := engines[cfg.Engine]
	if !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}

	return cfg
}

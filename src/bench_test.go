package main

import (
	"sort"
	"testing"

	"lifegrid/src/life"
	"lifegrid/src/sim"
)

var benchTemplate = life.Template{
	Name:        "ts1",
	Coordinates: [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}},
}

func sessionRun(s *sim.Session, b *testing.B) {
	s.AddTemplate(benchTemplate)
	stateCh := s.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s.Clear()
		<-stateCh //wait for finish
		s.SettleTemplate("ts1")
		b.StartTimer()
		s.Run()
		for {
			st := <-stateCh
			if st.Mode == sim.ModeFinished {
				break
			}
		}
	}
	s.Close()
	close(stateCh)
}

func newBenchOptions() *sim.Options {
	o := sim.DefaultOptions
	o.Interval = 0
	return &o
}

func BenchmarkSession_Run(b *testing.B) {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		b.Run(name, func(b *testing.B) {
			g, err := engines[name](80, 40)
			if err != nil {
				b.Fatal(err)
			}
			s := sim.New(g, newBenchOptions(), make(chan sim.Status, 10))
			sessionRun(s, b)
		})
	}
}

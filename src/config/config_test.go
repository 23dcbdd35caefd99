package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	//the defaults still come back usable
	if cfg.Width != Default().Width || cfg.Engine != Default().Engine {
		t.Errorf("expected defaults on error, got %+v", cfg)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 80, "height": 24, "engine": "parallel", "interval": 50000000}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 80 || cfg.Height != 24 || cfg.Engine != "parallel" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Interval != 50*time.Millisecond {
		t.Errorf("interval: got %v, want %v", cfg.Interval, 50*time.Millisecond)
	}
	//untouched keys keep their defaults
	if cfg.MaxSteps != Default().MaxSteps {
		t.Errorf("max steps: got %v, want the default %v", cfg.MaxSteps, Default().MaxSteps)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an unmarshal error")
	}
}

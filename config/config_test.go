package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mandel.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load(\"\") (-want +got):\n%s", diff)
	}
	p, err := cfg.Params()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mandel.DefaultParams(), p); diff != "" {
		t.Errorf("Params() (-want +got):\n%s", diff)
	}
}

func TestLoad_OverlaysDefault(t *testing.T) {
	path := writeFile(t, `
region:
  xmin: -0.5
  xmax: 0.5
  ymin: 0
  ymax: 1
max_iter: 250
server:
  tcp_addr: ":9000"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Region = mandel.Region{Xmin: -0.5, Xmax: 0.5, Ymin: 0, Ymax: 1}
	want.MaxIter = 250
	want.Server.TCPAddr = ":9000"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load (-want +got):\n%s", diff)
	}
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeFile(t, "max_iterations: 5\n")
	if _, err := Load(path); err == nil {
		t.Errorf("Load accepted an unknown field")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestParams_Landmark(t *testing.T) {
	cfg := Default()
	cfg.Landmark = "seahorse-valley"
	p, err := cfg.Params()
	if err != nil {
		t.Fatal(err)
	}
	if p.Region != mandel.SeahorseValley {
		t.Errorf("region = %v, want %v", p.Region, mandel.SeahorseValley)
	}

	cfg.Landmark = "atlantis"
	if _, err := cfg.Params(); !errors.Is(err, ErrUnknownLandmark) {
		t.Errorf("err = %v, want ErrUnknownLandmark", err)
	}
}

func TestParams_Invalid(t *testing.T) {
	cfg := Default()
	cfg.Resolution.Width = 0
	if _, err := cfg.Params(); !errors.Is(err, mandel.ErrInvalidResolution) {
		t.Errorf("err = %v, want ErrInvalidResolution", err)
	}
}

func TestMarshal_RoundTripsThroughLoad(t *testing.T) {
	cfg := Default()
	cfg.Landmark = "triple-spiral"
	cfg.Workers = 3
	b, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	got, err := Load(writeFile(t, string(b)))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

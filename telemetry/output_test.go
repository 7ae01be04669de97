package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/starfield/config"
)

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager for empty dir, got %v, %v", om, err)
	}
	// Nil manager is safe to use
	if err := om.WritePerf(PerfStats{}, FrameInfo{}); err != nil {
		t.Errorf("WritePerf on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
	if om.Dir() != "" {
		t.Error("expected empty dir for nil manager")
	}
}

func TestOutputManager_WritesPerfOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	stats := PerfStats{AvgFrameDuration: 2 * time.Millisecond, PhasePct: map[string]float64{}}
	for i := 0; i < 3; i++ {
		if err := om.WritePerf(stats, FrameInfo{Frame: int64(i * 60)}); err != nil {
			t.Fatalf("WritePerf: %v", err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "frame,elapsed_sec,avg_frame_us") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Count(string(data), "avg_frame_us") != 1 {
		t.Error("expected the header exactly once")
	}
	if !strings.HasPrefix(lines[2], "60,") {
		t.Errorf("expected second row for frame 60, got %q", lines[2])
	}
}

func TestOutputManager_WriteConfig(t *testing.T) {
	om, err := NewOutputManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if _, err := config.Load(om.Path("config.yaml")); err != nil {
		t.Errorf("written config does not load back: %v", err)
	}
}

package telemetry

import (
	"testing"
	"time"
)

// fakeNow returns a clock function and a way to advance it.
func fakeNow() (func() time.Time, func(time.Duration)) {
	t := time.Unix(1000, 0)
	return func() time.Time { return t }, func(d time.Duration) { t = t.Add(d) }
}

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)
	now, advance := fakeNow()
	pc.now = now

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseShade)
		advance(3 * time.Millisecond)
		pc.StartPhase(PhaseDraw)
		advance(1 * time.Millisecond)
		pc.EndFrame()
		advance(12 * time.Millisecond)
	}

	stats := pc.Stats()

	if stats.AvgFrameDuration != 4*time.Millisecond {
		t.Errorf("expected 4ms average frame, got %v", stats.AvgFrameDuration)
	}
	if stats.PhaseAvg[PhaseShade] != 3*time.Millisecond {
		t.Errorf("expected 3ms shade, got %v", stats.PhaseAvg[PhaseShade])
	}
	if stats.PhaseAvg[PhaseDraw] != time.Millisecond {
		t.Errorf("expected 1ms draw, got %v", stats.PhaseAvg[PhaseDraw])
	}
	if pct := stats.PhasePct[PhaseShade]; pct != 75 {
		t.Errorf("expected shade at 75%%, got %v", pct)
	}
	if stats.Samples != 5 {
		t.Errorf("expected 5 samples, got %d", stats.Samples)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)
	now, advance := fakeNow()
	pc.now = now

	// Five slow frames followed by five fast ones; only the fast ones remain
	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseShade)
		if i < 5 {
			advance(10 * time.Millisecond)
		} else {
			advance(2 * time.Millisecond)
		}
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.Samples != 5 {
		t.Errorf("expected window of 5, got %d", stats.Samples)
	}
	if stats.MaxFrameDuration != 2*time.Millisecond {
		t.Errorf("expected old samples evicted, max is %v", stats.MaxFrameDuration)
	}
}

func TestPerfCollector_Percentile(t *testing.T) {
	pc := NewPerfCollector(100)
	now, advance := fakeNow()
	pc.now = now

	// 1ms..100ms
	for i := 1; i <= 100; i++ {
		pc.StartFrame()
		advance(time.Duration(i) * time.Millisecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.MinFrameDuration != time.Millisecond || stats.MaxFrameDuration != 100*time.Millisecond {
		t.Errorf("expected range 1ms..100ms, got %v..%v", stats.MinFrameDuration, stats.MaxFrameDuration)
	}
	if p95 := stats.P95FrameDuration; p95 < 95*time.Millisecond || p95 > 96*time.Millisecond {
		t.Errorf("expected p95 near 95ms, got %v", p95)
	}
	if stats.AvgFrameDuration != 50500*time.Microsecond {
		t.Errorf("expected mean 50.5ms, got %v", stats.AvgFrameDuration)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgFrameDuration != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}
	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg map")
	}
	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
}

func TestPerfCollector_FrameRate(t *testing.T) {
	pc := NewPerfCollector(10)
	now, advance := fakeNow()
	pc.now = now

	pc.StartFrame()
	pc.EndFrame()
	if pc.Stats().FPS != 0 {
		t.Error("expected no FPS after a single frame")
	}

	advance(20 * time.Millisecond)
	pc.StartFrame()
	pc.EndFrame()

	stats := pc.Stats()
	if stats.FrameInterval != 20*time.Millisecond {
		t.Errorf("expected 20ms interval, got %v", stats.FrameInterval)
	}
	if stats.FPS != 50 {
		t.Errorf("expected 50 FPS, got %v", stats.FPS)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	s := PerfStats{
		AvgFrameDuration: 4 * time.Millisecond,
		P95FrameDuration: 6 * time.Millisecond,
		FPS:              60,
		PhasePct:         map[string]float64{PhaseShade: 70, PhaseHUD: 5},
	}

	rec := s.ToCSV(FrameInfo{Frame: 600, Elapsed: 10, Visible: 1234})

	if rec.Frame != 600 || rec.Visible != 1234 || rec.ElapsedSec != 10 {
		t.Errorf("unexpected frame info in %+v", rec)
	}
	if rec.AvgFrameUS != 4000 || rec.P95FrameUS != 6000 {
		t.Errorf("unexpected timings in %+v", rec)
	}
	if rec.ShadePct != 70 || rec.HUDPct != 5 || rec.DrawPct != 0 {
		t.Errorf("unexpected phase split in %+v", rec)
	}
}

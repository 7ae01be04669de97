package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/starfield/starfield"
)

// Phase names for one rendered frame.
const (
	PhaseShade   = starfield.PhaseShade
	PhaseDraw    = starfield.PhaseDraw
	PhaseEffects = "effects"
	PhaseHUD     = "hud"
)

// phaseOrder is the log and CSV order of the frame phases.
var phaseOrder = []string{PhaseShade, PhaseDraw, PhaseEffects, PhaseHUD}

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// PerfCollector tracks frame timing over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string

	// Interval between consecutive frame starts
	lastFrameStart time.Time
	frameInterval  time.Duration

	now func() time.Time
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of frames to aggregate over (e.g., 120 for two seconds at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
		now:           time.Now,
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	now := p.now()
	if !p.lastFrameStart.IsZero() {
		p.frameInterval = now.Sub(p.lastFrameStart)
	}
	p.lastFrameStart = now
	p.frameStart = now
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := p.now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes timing the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := p.now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
		p.lastPhase = ""
	}

	p.samples[p.writeIndex] = PerfSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	// Frame work time (StartFrame to EndFrame)
	AvgFrameDuration time.Duration
	MinFrameDuration time.Duration
	MaxFrameDuration time.Duration
	P95FrameDuration time.Duration

	// Phase breakdown (average durations)
	PhaseAvg map[string]time.Duration

	// Phase percentages of average frame work
	PhasePct map[string]float64

	// Display rate, from the interval between frame starts
	FrameInterval time.Duration
	FPS           float64

	Samples int
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	var fps float64
	if p.frameInterval > 0 {
		fps = float64(time.Second) / float64(p.frameInterval)
	}

	out := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameInterval: p.frameInterval,
		FPS:           fps,
		Samples:       p.sampleCount,
	}
	if p.sampleCount == 0 {
		return out
	}

	durations := make([]float64, p.sampleCount)
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		durations[i] = float64(s.FrameDuration)
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	// Quantile requires sorted input
	sort.Float64s(durations)
	out.AvgFrameDuration = time.Duration(stat.Mean(durations, nil))
	out.MinFrameDuration = time.Duration(durations[0])
	out.MaxFrameDuration = time.Duration(durations[len(durations)-1])
	out.P95FrameDuration = time.Duration(stat.Quantile(0.95, stat.Empirical, durations, nil))

	for phase, sum := range phaseSum {
		avg := sum / time.Duration(p.sampleCount)
		out.PhaseAvg[phase] = avg
		if out.AvgFrameDuration > 0 {
			out.PhasePct[phase] = float64(avg) / float64(out.AvgFrameDuration) * 100
		}
	}

	return out
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_frame_us", s.AvgFrameDuration.Microseconds(),
		"p95_frame_us", s.P95FrameDuration.Microseconds(),
		"max_frame_us", s.MaxFrameDuration.Microseconds(),
	}

	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}

	for _, phase := range phaseOrder {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", float64(int(pct*10))/10)
		}
	}

	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrameDuration.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrameDuration.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrameDuration.Microseconds()),
		slog.Int64("p95_frame_us", s.P95FrameDuration.Microseconds()),
		slog.Int("samples", s.Samples),
	}

	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}

	for _, phase := range phaseOrder {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	Frame      int64   `csv:"frame"`
	ElapsedSec float64 `csv:"elapsed_sec"`
	AvgFrameUS int64   `csv:"avg_frame_us"`
	MinFrameUS int64   `csv:"min_frame_us"`
	MaxFrameUS int64   `csv:"max_frame_us"`
	P95FrameUS int64   `csv:"p95_frame_us"`
	FPS        float64 `csv:"fps"`
	Visible    int     `csv:"visible"`
	ShadePct   float64 `csv:"shade_pct"`
	DrawPct    float64 `csv:"draw_pct"`
	EffectsPct float64 `csv:"effects_pct"`
	HUDPct     float64 `csv:"hud_pct"`
}

// FrameInfo identifies the frame a stats record was taken at.
type FrameInfo struct {
	Frame   int64
	Elapsed float64
	Visible int
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(at FrameInfo) PerfStatsCSV {
	return PerfStatsCSV{
		Frame:      at.Frame,
		ElapsedSec: at.Elapsed,
		AvgFrameUS: s.AvgFrameDuration.Microseconds(),
		MinFrameUS: s.MinFrameDuration.Microseconds(),
		MaxFrameUS: s.MaxFrameDuration.Microseconds(),
		P95FrameUS: s.P95FrameDuration.Microseconds(),
		FPS:        s.FPS,
		Visible:    at.Visible,
		ShadePct:   s.PhasePct[PhaseShade],
		DrawPct:    s.PhasePct[PhaseDraw],
		EffectsPct: s.PhasePct[PhaseEffects],
		HUDPct:     s.PhasePct[PhaseHUD],
	}
}

package debug

import (
	"fmt"
	"sync/atomic"
	"time"
)

// LoadProfiler measures how much of each audio period a callback uses.
// Record is lock-free and allocation-free, so it may be called from a
// device callback; readers take a Stats copy from any goroutine.
type LoadProfiler struct {
	sampleRate float64

	count      atomic.Uint64
	totalNanos atomic.Uint64
	maxNanos   atomic.Uint64
	frames     atomic.Uint64
	lastLoad   atomic.Uint64 // percent * 100
}

// Stats is a point-in-time copy of the profiler counters
type Stats struct {
	Count   uint64
	Average time.Duration
	Max     time.Duration
	// Load is the share of the audio time spent processing, in percent
	Load float64
	// LastLoad is Load for the most recent callback
	LastLoad float64
}

// NewLoadProfiler creates a profiler for callbacks at sampleRate
func NewLoadProfiler(sampleRate float64) *LoadProfiler {
	return &LoadProfiler{sampleRate: sampleRate}
}

// Start begins timing a callback; pass the result to Stop
func (p *LoadProfiler) Start() time.Time {
	return time.Now()
}

// Stop records a callback that began at start and covered frames samples
func (p *LoadProfiler) Stop(start time.Time, frames int) {
	p.Record(frames, time.Since(start))
}

// Record adds one callback measurement
func (p *LoadProfiler) Record(frames int, elapsed time.Duration) {
	ns := uint64(elapsed.Nanoseconds())
	p.count.Add(1)
	p.totalNanos.Add(ns)
	p.frames.Add(uint64(frames))

	for {
		cur := p.maxNanos.Load()
		if ns <= cur || p.maxNanos.CompareAndSwap(cur, ns) {
			break
		}
	}

	if frames > 0 && p.sampleRate > 0 {
		budget := float64(frames) / p.sampleRate * float64(time.Second)
		p.lastLoad.Store(uint64(float64(ns) / budget * 100 * 100))
	}
}

// Stats returns the counters accumulated since the last Reset
func (p *LoadProfiler) Stats() Stats {
	s := Stats{
		Count:    p.count.Load(),
		Max:      time.Duration(p.maxNanos.Load()),
		LastLoad: float64(p.lastLoad.Load()) / 100,
	}
	total := p.totalNanos.Load()
	if s.Count > 0 {
		s.Average = time.Duration(total / s.Count)
	}
	if frames := p.frames.Load(); frames > 0 && p.sampleRate > 0 {
		audio := float64(frames) / p.sampleRate * float64(time.Second)
		s.Load = float64(total) / audio * 100
	}
	return s
}

// Reset clears all counters
func (p *LoadProfiler) Reset() {
	p.count.Store(0)
	p.totalNanos.Store(0)
	p.maxNanos.Store(0)
	p.frames.Store(0)
	p.lastLoad.Store(0)
}

// Report formats the current statistics
func (p *LoadProfiler) Report() string {
	s := p.Stats()
	return fmt.Sprintf("callbacks=%d avg=%v max=%v load=%.2f%% last=%.2f%%",
		s.Count, s.Average, s.Max, s.Load, s.LastLoad)
}

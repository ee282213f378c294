// Package profiling wraps runtime/pprof for the chartkit demo binary:
// CPU profiling across the window's lifetime and a heap snapshot on exit.
package profiling

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
)

// Config names the profile output files. An empty path disables that
// profile.
type Config struct {
	CPUProfilePath string
	MemProfilePath string
}

// Enabled reports whether any profile output is configured.
func (c Config) Enabled() bool {
	return c.CPUProfilePath != "" || c.MemProfilePath != ""
}

// Profiler runs at most one profiling session at a time.
type Profiler struct {
	mu      sync.Mutex
	config  Config
	cpuFile *os.File
	running bool
}

// New creates a profiler. Call Start to begin a session.
func New(config Config) *Profiler {
	return &Profiler{config: config}
}

// Start begins CPU profiling when a CPU profile path is configured.
func (p *Profiler) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return errors.New("profiler already running")
	}
	if p.config.CPUProfilePath == "" {
		p.running = true
		return nil
	}

	f, err := os.Create(p.config.CPUProfilePath)
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("start cpu profile: %w", err)
	}
	p.cpuFile = f
	p.running = true
	return nil
}

// Stop ends CPU profiling and writes the heap profile if configured.
func (p *Profiler) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return errors.New("profiler not running")
	}

	var errs []error
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := p.cpuFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cpu profile: %w", err))
		}
		p.cpuFile = nil
	}
	if p.config.MemProfilePath != "" {
		if err := writeHeapProfile(p.config.MemProfilePath); err != nil {
			errs = append(errs, err)
		}
	}
	p.running = false
	return errors.Join(errs...)
}

// IsRunning reports whether a session is active.
func (p *Profiler) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// WriteHeapProfileNow takes a heap snapshot without stopping the session.
func (p *Profiler) WriteHeapProfileNow(path string) error {
	return writeHeapProfile(path)
}

func writeHeapProfile(path string) error {
	// Collect garbage first so the snapshot reflects live memory.
	runtime.GC()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create heap profile: %w", err)
	}
	defer f.Close()

	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}
	return nil
}

// Package profile provides optional runtime profiling for boardgen.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (default), [Profiler.Start] is a no-op and
// [Modes] is empty.
//
//	go build -tags pprof .
//
// # Available Profiling Modes
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// # Usage
//
//	p := profile.Profiler{
//	    Mode:  "cpu",
//	    Path:  "/tmp/profiles",
//	    Quiet: true,
//	}
//	defer p.Start().Stop()
//
// Profile files are written to Path with names matching the mode (e.g.,
// cpu.pprof, mem.pprof). From the command line:
//
//	boardgen --pprof-mode cpu --rows 500 --segments 200 -o /dev/null
//	go tool pprof -http=: ~/.cache/boardgen/pprof/cpu.pprof
//
// The default output directory is $XDG_CACHE_HOME/boardgen/pprof on
// Linux/Unix, ~/Library/Caches/boardgen/pprof on macOS.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

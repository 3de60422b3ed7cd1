package profile

// Profiler describes a profiling session.
type Profiler struct {
	// Mode is one of [Modes]. An empty mode disables profiling.
	Mode string
	// Path is the directory profile data is written to.
	Path string
	// Quiet suppresses the profiler's own log messages.
	Quiet bool
}

// Stopper ends a profiling session and flushes its data.
type Stopper interface{ Stop() }

// Start begins profiling and returns a [Stopper] that ends it.
//
// If the binary was built without the pprof tag, or p.Mode is empty or
// unknown, Start returns a no-op.
// Both Start and Stop are always safely callable.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p.Mode, p.Path, p.Quiet)
}

// Enabled reports whether the binary was built with profiling support.
func Enabled() bool { return len(Modes()) > 0 }

type ignore struct{}

func (ignore) Stop() {}

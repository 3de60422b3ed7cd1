package profile

import (
	"slices"
	"testing"
)

func TestProfiler_Start_EmptyModeIsNoop(t *testing.T) {
	stop := Profiler{Path: t.TempDir()}.Start()
	if _, ok := stop.(ignore); !ok {
		t.Errorf("expected no-op stopper for empty mode, got %T", stop)
	}

	stop.Stop()
}

func TestProfiler_Start_UnknownModeIsNoop(t *testing.T) {
	stop := Profiler{Mode: "bogus", Path: t.TempDir(), Quiet: true}.Start()
	if _, ok := stop.(ignore); !ok {
		t.Errorf("expected no-op stopper for unknown mode, got %T", stop)
	}

	stop.Stop()
}

func TestModes_SortedWithoutQuiet(t *testing.T) {
	modes := Modes()

	if !slices.IsSorted(modes) {
		t.Errorf("expected sorted modes, got %v", modes)
	}

	if slices.Contains(modes, "quiet") {
		t.Error("quiet must not be listed as a mode")
	}

	if Enabled() != (len(modes) > 0) {
		t.Errorf("Enabled() = %v with %d modes", Enabled(), len(modes))
	}
}

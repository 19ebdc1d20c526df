package tensorboard

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestResolve_Rich(t *testing.T) {
	b, err := Resolve(func() error { return nil })
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if b.Mode != RichMode {
		t.Errorf("Expected RICH, got %s", b.Mode)
	}
}

func TestResolve_DependencyMissing(t *testing.T) {
	probe := func() error {
		return fmt.Errorf("load metric store: %w", ErrDependencyMissing)
	}

	b, err := Resolve(probe)
	if err != nil {
		t.Fatalf("Missing dependency should not be an error, got %v", err)
	}
	if b.Mode != FallbackMode {
		t.Errorf("Expected FALLBACK, got %s", b.Mode)
	}
}

func TestResolve_OtherErrorPropagates(t *testing.T) {
	defect := errors.New("metric store schema mismatch")

	_, err := Resolve(func() error { return defect })
	if err != defect {
		t.Fatalf("Expected probe error to propagate unchanged, got %v", err)
	}
}

func TestMustResolve_PanicsOnDefect(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for non-dependency probe error")
		}
	}()
	mustResolve(func() error { return errors.New("boom") })
}

// The fallback binding accepts the same calls and writes nothing.
func TestFallbackBinding_NoOp(t *testing.T) {
	b, err := Resolve(func() error { return ErrDependencyMissing })
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	logger, err := b.NewLogger(dir, true)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	cb := b.NewCallback(logger, 2)

	cb.OnTrainingStart(map[string]any{"lr": 0.001})
	if !cb.OnStep(1, map[string]float64{"loss": 0.5}) {
		t.Error("OnStep should let training continue")
	}
	cb.OnRolloutEnd(1)
	cb.OnTrainingEnd()
	logger.LogValue("train/loss", 0.5, 1)
	logger.LogHParams(map[string]any{"epochs": 10})
	if err := logger.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Fallback logger wrote %d entries to %s", len(entries), dir)
	}
}

func TestMode_String(t *testing.T) {
	if RichMode.String() != "RICH" || FallbackMode.String() != "FALLBACK" || Mode(9).String() != "UNKNOWN" {
		t.Error("unexpected Mode strings")
	}
}

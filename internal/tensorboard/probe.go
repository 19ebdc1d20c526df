package tensorboard

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/FortiShield/tradescope/internal/storage"
)

// Mode is the instrumentation binding selected at startup.
type Mode int

const (
	RichMode     Mode = iota // metrics are written to disk
	FallbackMode             // no-op implementations
)

func (m Mode) String() string {
	switch m {
	case RichMode:
		return "RICH"
	case FallbackMode:
		return "FALLBACK"
	default:
		return "UNKNOWN"
	}
}

// ErrDependencyMissing marks a probe failure caused by an absent dependency.
// Only errors matching it select FallbackMode.
var ErrDependencyMissing = errors.New("tensorboard dependency missing")

// Probe checks whether the rich implementation can run.
type Probe func() error

// DefaultProbe checks that the SQLite driver is linked into the binary.
func DefaultProbe() error {
	if !storage.DriverAvailable() {
		return fmt.Errorf("%w: %w", ErrDependencyMissing, storage.ErrDriverUnavailable)
	}
	return nil
}

// Binding is the pair of constructors every caller goes through.
type Binding struct {
	Mode        Mode
	NewLogger   func(logdir string, activate bool) (Logger, error)
	NewCallback func(logger Logger, verbose int) Callback
}

var (
	richBinding = Binding{
		Mode:        RichMode,
		NewLogger:   NewTensorboardLogger,
		NewCallback: NewTensorBoardCallback,
	}
	baseBinding = Binding{
		Mode:        FallbackMode,
		NewLogger:   NewBaseLogger,
		NewCallback: NewBaseCallback,
	}
)

// Resolve runs probe and picks the binding. A missing dependency selects
// FallbackMode; any other probe error is returned unchanged.
func Resolve(probe Probe) (Binding, error) {
	err := probe()
	switch {
	case err == nil:
		return richBinding, nil
	case errors.Is(err, ErrDependencyMissing):
		slog.Info("Tensorboard not available, training metrics will not be recorded", slog.Any("reason", err))
		return baseBinding, nil
	default:
		return Binding{}, err
	}
}

// active is fixed at package initialisation and never reassigned.
var active = mustResolve(DefaultProbe)

func mustResolve(probe Probe) Binding {
	b, err := Resolve(probe)
	if err != nil {
		panic(fmt.Sprintf("tensorboard probe failed: %v", err))
	}
	return b
}

// ActiveMode reports which binding this process uses.
func ActiveMode() Mode { return active.Mode }

// NewTBLogger creates a Logger using the active binding.
func NewTBLogger(logdir string, activate bool) (Logger, error) {
	return active.NewLogger(logdir, activate)
}

// NewTBCallback creates a Callback using the active binding.
func NewTBCallback(logger Logger, verbose int) Callback {
	return active.NewCallback(logger, verbose)
}

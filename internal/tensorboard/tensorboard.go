package tensorboard

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"
	"time"

	"github.com/FortiShield/tradescope/internal/storage"
	"github.com/google/uuid"
)

// TensorboardLogger writes training metrics to a per-run SQLite file under
// <logdir>/tensorboard.
type TensorboardLogger struct {
	runID string
	path  string
	store *storage.MetricStore
}

// NewTensorboardLogger opens a metric file for a new run. With activate set
// to false it returns a BaseLogger instead.
func NewTensorboardLogger(logdir string, activate bool) (Logger, error) {
	if !activate {
		return BaseLogger{}, nil
	}

	dir := filepath.Join(logdir, "tensorboard")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create tensorboard dir: %w", err)
	}

	runID := uuid.NewString()
	path := filepath.Join(dir, runID+".db")

	store, err := storage.NewMetricStore(path)
	if err != nil {
		return nil, err
	}
	if err := store.AddRun(context.Background(), runID, time.Now().UnixMicro()); err != nil {
		store.Close()
		return nil, err
	}

	slog.Info("Tensorboard logger started", slog.String("run", runID), slog.String("path", path))
	return &TensorboardLogger{runID: runID, path: path, store: store}, nil
}

// RunID identifies the run inside the metric file.
func (l *TensorboardLogger) RunID() string { return l.runID }

// Path is the metric file location.
func (l *TensorboardLogger) Path() string { return l.path }

// Store exposes the underlying metric store for readers.
func (l *TensorboardLogger) Store() *storage.MetricStore { return l.store }

func (l *TensorboardLogger) LogValue(tag string, value float64, step int64) {
	err := l.store.AddScalar(context.Background(), storage.Scalar{
		Run:      l.runID,
		Tag:      tag,
		Step:     step,
		Value:    value,
		WallTime: time.Now().UnixMicro(),
	})
	if err != nil {
		slog.Warn("Failed to record metric", slog.String("tag", tag), slog.Any("error", err))
	}
}

func (l *TensorboardLogger) LogHParams(params map[string]any) {
	if len(params) == 0 {
		return
	}
	flat := make(map[string]string, len(params))
	for k, v := range params {
		flat[k] = fmt.Sprint(v)
	}
	if err := l.store.UpsertHParams(context.Background(), l.runID, flat); err != nil {
		slog.Warn("Failed to record hyperparameters", slog.Any("error", err))
	}
}

func (l *TensorboardLogger) Close() error {
	return l.store.Close()
}

// TensorBoardCallback forwards training-loop events to a Logger.
type TensorBoardCallback struct {
	logger   Logger
	verbose  int
	rollouts atomic.Int64
}

func NewTensorBoardCallback(logger Logger, verbose int) Callback {
	return &TensorBoardCallback{logger: logger, verbose: verbose}
}

func (c *TensorBoardCallback) OnTrainingStart(hparams map[string]any) {
	c.logger.LogHParams(hparams)
}

// OnStep records every metric under train/<name>, in name order.
func (c *TensorBoardCallback) OnStep(step int64, metrics map[string]float64) bool {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		c.logger.LogValue("train/"+name, metrics[name], step)
	}
	if c.verbose > 1 {
		slog.Debug("Training step recorded", slog.Int64("step", step), slog.Int("metrics", len(metrics)))
	}
	return true
}

func (c *TensorBoardCallback) OnRolloutEnd(step int64) {
	n := c.rollouts.Add(1)
	c.logger.LogValue("rollout/count", float64(n), step)
}

func (c *TensorBoardCallback) OnTrainingEnd() {
	if c.verbose > 0 {
		slog.Info("Training finished", slog.Int64("rollouts", c.rollouts.Load()))
	}
}

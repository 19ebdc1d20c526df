//go:build !notensorboard

package tensorboard

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestActiveMode_Rich(t *testing.T) {
	if ActiveMode() != RichMode {
		t.Errorf("Expected RICH in default builds, got %s", ActiveMode())
	}
	if err := DefaultProbe(); err != nil {
		t.Errorf("DefaultProbe failed: %v", err)
	}
}

func TestTensorboardLogger_RecordsMetrics(t *testing.T) {
	logger, err := NewTBLogger(t.TempDir(), true)
	if err != nil {
		t.Fatalf("NewTBLogger failed: %v", err)
	}
	defer logger.Close()

	tb, ok := logger.(*TensorboardLogger)
	if !ok {
		t.Fatalf("Expected *TensorboardLogger, got %T", logger)
	}
	if _, err := os.Stat(tb.Path()); err != nil {
		t.Fatalf("metric file missing: %v", err)
	}

	cb := NewTBCallback(logger, 0)
	cb.OnTrainingStart(map[string]any{"lr": 0.001, "epochs": 10})
	cb.OnStep(1, map[string]float64{"loss": 0.9, "reward": 1})
	cb.OnStep(2, map[string]float64{"loss": 0.4})
	cb.OnRolloutEnd(2)
	cb.OnTrainingEnd()

	ctx := context.Background()
	loss, err := tb.Store().Scalars(ctx, tb.RunID(), "train/loss")
	if err != nil {
		t.Fatal(err)
	}
	if len(loss) != 2 || loss[0].Value != 0.9 || loss[1].Value != 0.4 {
		t.Errorf("Unexpected train/loss samples: %+v", loss)
	}

	n, err := tb.Store().CountScalars(ctx, tb.RunID())
	if err != nil {
		t.Fatal(err)
	}
	// loss x2, reward x1, rollout/count x1
	if n != 4 {
		t.Errorf("Expected 4 samples, got %d", n)
	}

	params, err := tb.Store().HParams(ctx, tb.RunID())
	if err != nil {
		t.Fatal(err)
	}
	if params["lr"] != "0.001" || params["epochs"] != "10" {
		t.Errorf("Unexpected hparams: %v", params)
	}
}

func TestTensorboardLogger_Inactive(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewTBLogger(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := logger.(BaseLogger); !ok {
		t.Errorf("Expected BaseLogger when inactive, got %T", logger)
	}
	if _, err := os.Stat(filepath.Join(dir, "tensorboard")); !os.IsNotExist(err) {
		t.Error("Inactive logger should not create the tensorboard dir")
	}
}

package tensorboard

// Logger records training metrics.
type Logger interface {
	// LogValue records one scalar sample under tag.
	LogValue(tag string, value float64, step int64)

	// LogHParams records the hyperparameters of the current run.
	LogHParams(params map[string]any)

	Close() error
}

// Callback is invoked by the training loop.
type Callback interface {
	OnTrainingStart(hparams map[string]any)

	// OnStep is called after every training step. Returning false stops training.
	OnStep(step int64, metrics map[string]float64) bool

	OnRolloutEnd(step int64)

	OnTrainingEnd()
}

package tensorboard

// BaseLogger satisfies Logger without recording anything. It is bound when
// the metric store dependency is not available.
type BaseLogger struct{}

// NewBaseLogger has the same signature as NewTensorboardLogger.
func NewBaseLogger(logdir string, activate bool) (Logger, error) {
	return BaseLogger{}, nil
}

func (BaseLogger) LogValue(tag string, value float64, step int64) {}

func (BaseLogger) LogHParams(params map[string]any) {}

func (BaseLogger) Close() error { return nil }

// BaseCallback satisfies Callback without recording anything.
type BaseCallback struct {
	Logger  Logger
	Verbose int
}

func NewBaseCallback(logger Logger, verbose int) Callback {
	return &BaseCallback{Logger: logger, Verbose: verbose}
}

func (c *BaseCallback) OnTrainingStart(hparams map[string]any) {}

func (c *BaseCallback) OnStep(step int64, metrics map[string]float64) bool { return true }

func (c *BaseCallback) OnRolloutEnd(step int64) {}

func (c *BaseCallback) OnTrainingEnd() {}

// Package tensorboard provides the training-metric Logger and Callback used
// by model training.
//
// Which implementation backs NewTBLogger and NewTBCallback is decided once,
// when the package is initialised. If the SQLite driver is linked in (the
// default build) metrics are written to <logdir>/tensorboard/<run>.db.
// Binaries built with -tags notensorboard get BaseLogger and BaseCallback,
// which accept the same calls and record nothing.
package tensorboard

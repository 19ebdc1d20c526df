// Package storage persists training metrics in SQLite.
//
// The SQLite driver is linked only when the binary is built without the
// notensorboard tag. DriverAvailable reports which case applies, and
// NewMetricStore fails with ErrDriverUnavailable when the driver is absent.
package storage

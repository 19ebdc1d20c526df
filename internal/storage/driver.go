//go:build !notensorboard

package storage

// The pure-Go SQLite driver is the optional dependency behind training
// metrics. Build with -tags notensorboard to leave it out of the binary.
import _ "github.com/glebarez/go-sqlite"

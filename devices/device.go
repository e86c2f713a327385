// Package devices defines the contract between remote-control hardware
// backends and the services that drive them.
package devices

import "github.com/pkg/errors"

// Device is a network remote-control unit able to transmit raw command
// codes and capture new ones in learning mode. All operations block on
// device I/O.
type Device interface {
	// Host identifies the unit, for logging only.
	Host() string
	// Auth (re-)establishes the control session with the unit.
	Auth() error
	// SendData transmits a raw command code.
	SendData(code []byte) error
	// EnterLearning puts the unit into learning mode.
	EnterLearning() error
	// CheckData returns the code captured since EnterLearning, or an
	// error wrapping ErrNoData while the unit is still waiting for a
	// button press.
	CheckData() ([]byte, error)
}

// Failure classes. Backends wrap their library errors onto these
// sentinels so callers can pick a recovery strategy without knowing the
// underlying protocol.
var (
	// ErrNotAuthorized marks a lapsed or rejected control session.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrClosed marks a dropped or unresponsive connection.
	ErrClosed = errors.New("connection closed")
	// ErrNoData is the normal "keep polling" answer in learning mode.
	ErrNoData = errors.New("no data captured")
)

// Recoverable reports whether an operation is worth retrying after
// re-authenticating with the unit.
func Recoverable(err error) bool {
	return errors.Is(err, ErrNotAuthorized) || errors.Is(err, ErrClosed)
}

package scroller

import "errors"

var (
	ErrNoTemplate         = errors.New("no item template")
	ErrNoSurface          = errors.New("no scroll surface")
	ErrNoViewportChildren = errors.New("viewport has no children")
)

// ConfigurationError is returned by [Controller.Initialize] when the
// controller is not wired well enough to build a pool. The controller stays
// inert and can be initialized again once the problem is fixed.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "scroller verification failed: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

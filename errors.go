package glove

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by operations that exist in the public
// surface but have no implementation, such as Visualize.
var ErrNotImplemented = errors.New("glove: not implemented")

// ConfigError reports an invalid configuration value. It is returned
// before any model state is allocated.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("glove: invalid configuration: %s %s", e.Field, e.Reason)
}

// IntegrityError reports a persisted artifact whose size disagrees with
// the vocabulary it was saved with. Loading aborts on the first
// mismatch.
type IntegrityError struct {
	Artifact string
	Want     int64
	Got      int64
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("glove: %s payload is %d bytes, want %d", e.Artifact, e.Got, e.Want)
}

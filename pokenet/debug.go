package pokenet

import "github.com/go-logr/logr"

var internalLogger = logr.Discard()

// SetInternalLogger routes this package's logging through the given logger.
func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("pokenet")
}

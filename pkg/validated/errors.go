package validated

import "github.com/cockroachdb/errors"

var (
	// ErrValidatorRequired is returned when no validator is configured.
	ErrValidatorRequired = errors.New("validated: validator is required")
	// ErrComponentRequired is returned when no delegated widget is configured.
	ErrComponentRequired = errors.New("validated: component is required")
	// ErrCallbackRequired is returned when OnValidatedChange is missing.
	ErrCallbackRequired = errors.New("validated: onValidatedChange is required")
	// ErrUnmounted signals the wrapper was torn down.
	ErrUnmounted = errors.New("validated: wrapper is unmounted")
)

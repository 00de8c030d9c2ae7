package story

import "errors"

// Construction failures are terminal for the object being built; the
// first violation in document order propagates with no collection of
// further errors.
var (
	// ErrMissingData marks a mandatory playdata field that is absent.
	ErrMissingData = errors.New("missing data")

	// ErrUnknownValue marks a present value outside its vocabulary or
	// of an unusable shape.
	ErrUnknownValue = errors.New("unknown value")

	// ErrUnknownAvatar marks an avatar id that resolved to nothing in
	// the owning story.
	ErrUnknownAvatar = errors.New("unknown avatar")

	// ErrCannotLoad wraps I/O failures while loading a playdata
	// artifact.
	ErrCannotLoad = errors.New("cannot load backing file")
)

package world

// Error types attached to errors returned by this package. Use
// errors.IsType to test for them.
const (
	ErrTypeOutOfBounds  = "out-of-bounds"
	ErrTypeInvalidLevel = "invalid-level"
)

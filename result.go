package jsontransform

// Result is the outcome of one transformation run: the edited document plus
// every failure recorded along the way. Commands that fail are skipped, never
// fatal, so Document is always usable and Errors explains what was left
// undone.
type Result struct {
	Document any
	Errors   []Error
}

// Error is one recorded command failure, tagged with the path the command was
// bound to. Err wraps one of the package sentinels, so
// errors.Is(e, ErrPathNotFound) works as expected.
type Error struct {
	Path Path
	Err  error
}

// Error implements error.
func (e Error) Error() string {
	return e.Path.String() + ": " + e.Err.Error()
}

// Unwrap exposes the wrapped sentinel.
func (e Error) Unwrap() error {
	return e.Err
}

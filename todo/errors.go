package todo

import "fmt"

// IOError reports a failure to read, write or lock the store file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError reports store file content that is not a valid todo document.
// The store is never partially loaded when this is returned.
type ParseError struct {
	Path string
	// Location is a JSON pointer to the offending value, when known.
	Location string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("parse %s at %s: %v", e.Path, e.Location, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

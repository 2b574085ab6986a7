package core

import "fmt"

// DecodeError marks a file whose content could not be read as UTF-8
// text. It is recoverable: the worker records it and moves on to the
// remaining assigned files.
type DecodeError struct {
	Filename string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("file %q is not valid UTF-8 text", e.Filename)
}

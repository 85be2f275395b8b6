package report

import "fmt"

// InvalidPathError reports an input or output path that is empty, missing or
// unusable. It is raised before any file is read.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid path %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid path %q", e.Path)
}

func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a required column absent from a CSV record.
// A malformed export aborts the whole run rather than emit corrupt output,
// so this error always propagates.
type MissingFieldError struct {
	Column string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required column %q is missing", e.Column)
}

// MalformedCSVError reports input that cannot be parsed as CSV at all.
type MalformedCSVError struct {
	Err error
}

func (e *MalformedCSVError) Error() string {
	return fmt.Sprintf("malformed CSV input: %v", e.Err)
}

func (e *MalformedCSVError) Unwrap() error {
	return e.Err
}

package bench

import "fmt"

// FileAccessError reports that the document under test could not be read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("read document %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// RenderError wraps a renderer failure with the iteration it happened on.
type RenderError struct {
	Iteration int
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render iteration %d: %v", e.Iteration, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

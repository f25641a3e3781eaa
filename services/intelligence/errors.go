package ai

import "fmt"

// ParsingError signals that the external text generation failed or returned
// content that could not be parsed into the expected structure. The request
// aborts without creating anything.
type ParsingError struct {
	Op  string
	Err error
}

func (e ParsingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e ParsingError) Unwrap() error {
	return e.Err
}

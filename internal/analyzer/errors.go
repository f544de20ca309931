package analyzer

import (
	"errors"
	"fmt"
)

// ErrInsufficientText matches any InsufficientTextError with errors.Is.
var ErrInsufficientText = errors.New("insufficient resume text")

// InsufficientTextError reports text too short to analyze, usually an image-based or encrypted document.
type InsufficientTextError struct {
	Length  int
	Minimum int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("%s: got %d characters, need at least %d; the document may be image-based or encrypted",
		ErrInsufficientText, e.Length, e.Minimum)
}

func (e *InsufficientTextError) Is(target error) bool {
	return target == ErrInsufficientText
}

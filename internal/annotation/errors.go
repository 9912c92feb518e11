package annotation

import "fmt"

// ResolveError explains why an annotation could not be resolved.
// It includes the annotation as written and, when known, the argument index.
type ResolveError struct {
	Name     string // Annotation name as written
	Argument int    // Zero-based argument index, -1 when not argument specific
	Message  string // Primary error message
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	if e.Argument >= 0 {
		return fmt.Sprintf("annotation @%s, argument %d: %s", e.Name, e.Argument+1, e.Message)
	}
	return fmt.Sprintf("annotation @%s: %s", e.Name, e.Message)
}

package typesystem

import "fmt"

// UnknownClassError is returned by graph queries for a name that was never
// declared.
type UnknownClassError struct {
	Name string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("class not found: %s", e.Name)
}

func NewUnknownClassError(name string) *UnknownClassError {
	return &UnknownClassError{Name: name}
}

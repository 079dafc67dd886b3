package form2

import (
	"fmt"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the panic value when it is an error so that errors.Is
// matches the sentinel errors of package paramak.
func (s *shapeErr) Unwrap() error {
	if err, ok := s.panicObj.(error); ok {
		return err
	}
	return nil
}

// Stack returns the stack trace captured when the generator panicked.
func (s *shapeErr) Stack() string { return s.stack }

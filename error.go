package cavitypost

import "fmt"

// Missing is returned when a named choice has no match, listing what
// would have been accepted.
type Missing struct {
	Prefix  string
	Options []string
}

func (m Missing) Error() string {
	return fmt.Sprintf("%s: acceptable options: %v", m.Prefix, m.Options)
}

// ErrorList collects per-case errors from a sweep, aligned with the case
// slice that produced them.
type ErrorList []error

func (e ErrorList) Error() string {
	var str string
	for _, err := range e {
		if err != nil {
			if str != "" {
				str += "; "
			}
			str += err.Error()
		}
	}
	return str
}

func (e ErrorList) AllNil() bool {
	if len(e) == 0 {
		return true
	}
	for _, err := range e {
		if err != nil {
			return false
		}
	}
	return true
}

// CaseError tags an error with the case that produced it.
type CaseError struct {
	Case Case
	Err  error
}

func (e *CaseError) Error() string {
	return e.Case.ID() + ": " + e.Err.Error()
}

func (e *CaseError) Unwrap() error {
	return e.Err
}

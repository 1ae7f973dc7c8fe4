package yaml

import "fmt"

// LoadError identifies the definition and field that failed to load
type LoadError struct {
	Type    string
	ID      string
	Field   string
	Line    int
	Message string
}

func (e *LoadError) Error() string {
	where := e.Type
	if e.ID != "" {
		where = fmt.Sprintf("%s %s", e.Type, e.ID)
	}
	if e.Field != "" {
		where = fmt.Sprintf("%s field %s", where, e.Field)
	}
	return fmt.Sprintf("%s (line %d): %s", where, e.Line, e.Message)
}

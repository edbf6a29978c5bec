package valueobjects

import "fmt"

type Priority string

const (
	PriorityNone   Priority = ""
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var validPriorities = map[Priority]bool{
	PriorityNone:   true,
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
}

func (p Priority) String() string {
	return string(p)
}

// IsValid accepts the empty priority; the field is optional on the form.
func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) IsSet() bool {
	return p != PriorityNone
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

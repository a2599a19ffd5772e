package model

import (
	"errors"
	"fmt"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var (
	// ErrInvalidPriority is returned when a priority outside Low/Medium/High is supplied.
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrTaskNotFound is returned by Project.RemoveTask when no task has the given id.
	ErrTaskNotFound = errors.New("task not found")
)

// Priorities lists the allowed values in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// ParsePriority converts raw input into a Priority. Matching is exact.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(raw)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q (allowed: %s, %s, %s)", ErrInvalidPriority, raw, PriorityLow, PriorityMedium, PriorityHigh)
	}
	return p, nil
}

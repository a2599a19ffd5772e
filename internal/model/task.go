package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateTimeLayout is the textual format used for due dates.
const DateTimeLayout = "2006-01-02 15:04"

// Task represents a single unit of work inside a project.
type Task struct {
	id          string
	title       string
	description string
	priority    Priority
	done        bool
	dueDate     *time.Time
	createdAt   time.Time
	completedAt *time.Time
}

// NewTask creates a pending task. An empty priority defaults to Medium.
func NewTask(title, description string, priority Priority, dueDate *time.Time) (*Task, error) {
	if priority == "" {
		priority = PriorityMedium
	}
	if _, err := ParsePriority(string(priority)); err != nil {
		return nil, err
	}

	return &Task{
		id:          uuid.New().String(),
		title:       title,
		description: description,
		priority:    priority,
		dueDate:     copyTime(dueDate),
		createdAt:   time.Now(),
	}, nil
}

func (t *Task) ID() string { return t.id }
func (t *Task) Title() string { return t.title }
func (t *Task) Description() string { return t.description }
func (t *Task) Priority() Priority { return t.priority }
func (t *Task) IsDone() bool { return t.done }
func (t *Task) DueDate() *time.Time { return copyTime(t.dueDate) }
func (t *Task) CreatedAt() time.Time { return t.createdAt }
func (t *Task) CompletedAt() *time.Time { return copyTime(t.completedAt) }

func (t *Task) SetTitle(title string) {
	t.title = title
}

func (t *Task) ChangeDescription(description string) {
	t.description = description
}

// MarkAsDone closes the task. Calling it again moves CompletedAt to the latest call.
func (t *Task) MarkAsDone() {
	now := time.Now()
	t.done = true
	t.completedAt = &now
}

func (t *Task) Reopen() {
	t.done = false
	t.completedAt = nil
}

// SetPriority changes the priority. The task is left untouched on error.
func (t *Task) SetPriority(priority Priority) error {
	p, err := ParsePriority(string(priority))
	if err != nil {
		return err
	}
	t.priority = p
	return nil
}

// UpdateDueDate replaces the deadline; nil removes it.
func (t *Task) UpdateDueDate(dueDate *time.Time) {
	t.dueDate = copyTime(dueDate)
}

// IsOverdue reports whether the task is still open and its deadline is strictly before now.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.dueDate != nil && !t.done && t.dueDate.Before(now)
}

func (t *Task) String() string {
	status := "[ ]"
	if t.done {
		status = "[x]"
	}
	due := "—"
	if t.dueDate != nil {
		due = t.dueDate.Format(DateTimeLayout)
	}
	return fmt.Sprintf("Task(id=%s, title=%q, status=%s, priority=%s, due=%s)", t.id, t.title, status, t.priority, due)
}

func copyTime(ts *time.Time) *time.Time {
	if ts == nil {
		return nil
	}
	c := *ts
	return &c
}

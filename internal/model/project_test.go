package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTask(t *testing.T, title string, p Priority) *Task {
	t.Helper()
	task, err := NewTask(title, title+" description", p, nil)
	require.NoError(t, err)
	return task
}

func titles(tasks []*Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title())
	}
	return out
}

func TestProject_AddTaskKeepsOrder(t *testing.T) {
	p := newProject("P", "")
	for _, title := range []string{"a", "b", "c", "d"} {
		p.AddTask(mustTask(t, title, PriorityMedium))
	}

	tasks := p.Tasks()
	require.Len(t, tasks, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, titles(tasks))

	tasks[0], tasks[3] = tasks[3], tasks[0]
	tasks[1] = nil
	assert.Equal(t, []string{"a", "b", "c", "d"}, titles(p.Tasks()))
}

func TestProject_AddNilIsIgnored(t *testing.T) {
	p := newProject("P", "")
	p.AddTask(nil)
	assert.Empty(t, p.Tasks())
}

func TestProject_RemoveTask(t *testing.T) {
	p := newProject("P", "")
	a := mustTask(t, "a", PriorityLow)
	b := mustTask(t, "b", PriorityLow)
	c := mustTask(t, "c", PriorityLow)
	p.AddTask(a)
	p.AddTask(b)
	p.AddTask(c)
	// Same task added twice: only the first occurrence goes.
	p.AddTask(b)

	require.NoError(t, p.RemoveTask(b.ID()))
	assert.Equal(t, []string{"a", "c", "b"}, titles(p.Tasks()))

	err := p.RemoveTask("missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Equal(t, []string{"a", "c", "b"}, titles(p.Tasks()))
}

func TestProject_TasksByStatus(t *testing.T) {
	p := newProject("P", "")
	a := mustTask(t, "a", PriorityLow)
	b := mustTask(t, "b", PriorityLow)
	c := mustTask(t, "c", PriorityLow)
	p.AddTask(a)
	p.AddTask(b)
	p.AddTask(c)
	b.MarkAsDone()

	assert.Equal(t, []string{"a", "c"}, titles(p.TasksByStatus(false)))
	assert.Equal(t, []string{"b"}, titles(p.TasksByStatus(true)))

	b.Reopen()
	assert.Empty(t, p.TasksByStatus(true))
}

func TestProject_TaskByID(t *testing.T) {
	p := newProject("P", "")
	a := mustTask(t, "a", PriorityLow)
	p.AddTask(a)

	assert.Same(t, a, p.TaskByID(a.ID()))
	assert.Nil(t, p.TaskByID("nope"))
}

func TestProject_Setters(t *testing.T) {
	p := newProject("P", "first")
	p.SetTitle("Q")
	p.SetDescription("second")
	assert.Equal(t, "Q", p.Title())
	assert.Equal(t, "second", p.Description())
	assert.NotEmpty(t, p.ID())
	assert.False(t, p.CreatedAt().IsZero())
	assert.Contains(t, p.String(), `title="Q"`)
}

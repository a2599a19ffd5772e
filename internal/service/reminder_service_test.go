package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/model"
)

func newTask(t *testing.T, title string, p model.Priority, due *time.Time) *model.Task {
	t.Helper()
	task, err := model.NewTask(title, "", p, due)
	require.NoError(t, err)
	return task
}

func TestOverdueSummary_NothingOverdue(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)

	user := model.NewUser("u", "", "")
	project := user.CreateProject("P", "")
	project.AddTask(newTask(t, "later", model.PriorityLow, &future))
	project.AddTask(newTask(t, "free", model.PriorityLow, nil))

	svc := NewReminderService(time.UTC)
	text, ok := svc.OverdueSummary(user, now)
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestOverdueSummary_SortedByDeadline(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	dayAgo := now.Add(-24 * time.Hour)
	hourAgo := now.Add(-time.Hour)

	user := model.NewUser("u", "", "")
	work := user.CreateProject("Work", "")
	home := user.CreateProject("Home", "")
	work.AddTask(newTask(t, "recent", model.PriorityHigh, &hourAgo))
	home.AddTask(newTask(t, "older", model.PriorityLow, &dayAgo))
	done := newTask(t, "finished", model.PriorityLow, &dayAgo)
	done.MarkAsDone()
	home.AddTask(done)

	svc := NewReminderService(time.UTC)
	text, ok := svc.OverdueSummary(user, now)
	require.True(t, ok)

	assert.Contains(t, text, "2025-05-01 12:00")
	assert.NotContains(t, text, "finished")
	older := strings.Index(text, "older")
	recent := strings.Index(text, "recent")
	require.NotEqual(t, -1, older)
	require.NotEqual(t, -1, recent)
	assert.Less(t, older, recent)
	assert.Contains(t, text, "просрочено")
}

func TestFormatTask_Icons(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	soon := now.Add(3 * time.Hour)
	far := now.Add(10 * 24 * time.Hour)

	svc := NewReminderService(time.UTC)

	assert.True(t, strings.HasPrefix(svc.FormatTask(newTask(t, "a", model.PriorityLow, nil), now), iconDefault))
	assert.True(t, strings.HasPrefix(svc.FormatTask(newTask(t, "b", model.PriorityLow, &past), now), iconOverdue))
	assert.True(t, strings.HasPrefix(svc.FormatTask(newTask(t, "c", model.PriorityLow, &soon), now), iconDue))
	assert.True(t, strings.HasPrefix(svc.FormatTask(newTask(t, "d", model.PriorityLow, &far), now), iconDefault))

	done := newTask(t, "e", model.PriorityLow, &past)
	done.MarkAsDone()
	assert.True(t, strings.HasPrefix(svc.FormatTask(done, now), iconDone))
}

func TestFormatTask_Details(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(36 * time.Hour)

	task, err := model.NewTask("  report ", " quarterly numbers ", model.PriorityHigh, &due)
	require.NoError(t, err)

	out := NewReminderService(time.UTC).FormatTask(task, now)
	assert.Contains(t, out, "report [High]")
	assert.Contains(t, out, "до 2025-05-03 00:00")
	assert.Contains(t, out, "осталось ≈2 дн.")
	assert.Contains(t, out, "📝 quarterly numbers")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

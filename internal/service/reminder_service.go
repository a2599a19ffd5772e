package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"task-tracker/internal/model"
)

const (
	iconDefault = "🟢"
	iconDue     = "⏳"
	iconOverdue = "⚠️"
	iconDone    = "✅"

	dueSoonWindow = 48 * time.Hour
)

// ReminderService builds human-readable digests of a user's tasks.
type ReminderService struct {
	loc *time.Location
}

func NewReminderService(loc *time.Location) *ReminderService {
	if loc == nil {
		loc = time.Local
	}
	return &ReminderService{loc: loc}
}

// OverdueSummary renders the overdue tasks of user, oldest deadline first.
// The boolean is false when nothing is overdue and the text should not be shown.
func (s *ReminderService) OverdueSummary(user *model.User, now time.Time) (string, bool) {
	overdue := user.OverdueTasksAt(now)
	if len(overdue) == 0 {
		return "", false
	}

	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].DueDate().Before(*overdue[j].DueDate())
	})

	var builder strings.Builder
	builder.WriteString("🔔 Напоминание: просроченные задачи\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", now.In(s.loc).Format(model.DateTimeLayout)))
	for _, task := range overdue {
		builder.WriteString(s.FormatTask(task, now))
	}
	return strings.TrimSpace(builder.String()), true
}

// FormatTask renders one task as a short multi-line block.
func (s *ReminderService) FormatTask(task *model.Task, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s [%s]", taskIcon(task, now), normalizeTitle(task.Title()), task.Priority()))

	if due := task.DueDate(); due != nil {
		d := due.In(s.loc)
		switch {
		case task.IsDone():
			sb.WriteString(fmt.Sprintf("\n   ⏰ до %s", d.Format(model.DateTimeLayout)))
		case task.IsOverdue(now):
			sb.WriteString(fmt.Sprintf("\n   ⏰ до %s — просрочено", d.Format(model.DateTimeLayout)))
		default:
			daysLeft := int(d.Sub(now).Hours()/24) + 1
			sb.WriteString(fmt.Sprintf("\n   ⏰ до %s · осталось ≈%d дн.", d.Format(model.DateTimeLayout), daysLeft))
		}
	}

	if desc := strings.TrimSpace(task.Description()); desc != "" {
		sb.WriteString(fmt.Sprintf("\n   📝 %s", desc))
	}

	sb.WriteByte('\n')
	return sb.String()
}

func taskIcon(task *model.Task, now time.Time) string {
	if task.IsDone() {
		return iconDone
	}
	due := task.DueDate()
	switch {
	case due == nil:
		return iconDefault
	case task.IsOverdue(now):
		return iconOverdue
	case due.Sub(now) <= dueSoonWindow:
		return iconDue
	default:
		return iconDefault
	}
}

func normalizeTitle(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "(без названия)"
	}
	return value
}

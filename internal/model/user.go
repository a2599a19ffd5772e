package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User owns projects and answers cross-project task queries.
// Aggregate views are rebuilt from the projects on every call.
type User struct {
	id        string
	username  string
	fullName  string
	email     string
	createdAt time.Time
	projects  []*Project
}

func NewUser(username, fullName, email string) *User {
	return &User{
		id:        uuid.New().String(),
		username:  username,
		fullName:  fullName,
		email:     email,
		createdAt: time.Now(),
	}
}

func (u *User) ID() string { return u.id }
func (u *User) Username() string { return u.username }
func (u *User) FullName() string { return u.fullName }
func (u *User) Email() string { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Projects returns a copy of the project list in creation order.
func (u *User) Projects() []*Project {
	out := make([]*Project, len(u.projects))
	copy(out, u.projects)
	return out
}

// CreateProject is the only way to obtain a Project.
func (u *User) CreateProject(title, description string) *Project {
	project := newProject(title, description)
	u.projects = append(u.projects, project)
	return project
}

// ProjectByID returns nil when the user has no such project.
func (u *User) ProjectByID(projectID string) *Project {
	for _, project := range u.projects {
		if project.id == projectID {
			return project
		}
	}
	return nil
}

// AllTasks flattens every project's tasks, project by project.
func (u *User) AllTasks() []*Task {
	var tasks []*Task
	for _, project := range u.projects {
		tasks = append(tasks, project.tasks...)
	}
	return tasks
}

func (u *User) OverdueTasks() []*Task {
	return u.OverdueTasksAt(time.Now())
}

// OverdueTasksAt returns open tasks whose due date is strictly before now.
func (u *User) OverdueTasksAt(now time.Time) []*Task {
	var overdue []*Task
	for _, task := range u.AllTasks() {
		if task.IsOverdue(now) {
			overdue = append(overdue, task)
		}
	}
	return overdue
}

// TasksByPriority matches exactly; an unknown priority simply matches nothing.
func (u *User) TasksByPriority(priority Priority) []*Task {
	var tasks []*Task
	for _, task := range u.AllTasks() {
		if task.priority == priority {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

func (u *User) String() string {
	return fmt.Sprintf("User(id=%s, username=%q, projects=%d)", u.id, u.username, len(u.projects))
}

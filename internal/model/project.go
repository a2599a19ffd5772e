package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Project is an ordered collection of tasks owned by a user.
type Project struct {
	id          string
	title       string
	description string
	createdAt   time.Time
	tasks       []*Task
}

func newProject(title, description string) *Project {
	return &Project{
		id:          uuid.New().String(),
		title:       title,
		description: description,
		createdAt:   time.Now(),
	}
}

func (p *Project) ID() string { return p.id }
func (p *Project) Title() string { return p.title }
func (p *Project) Description() string { return p.description }
func (p *Project) CreatedAt() time.Time { return p.createdAt }

func (p *Project) SetTitle(title string) {
	p.title = title
}

func (p *Project) SetDescription(description string) {
	p.description = description
}

// Tasks returns a copy of the task list in insertion order.
func (p *Project) Tasks() []*Task {
	out := make([]*Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

// AddTask appends task to the end of the project. Duplicate ids are not checked.
func (p *Project) AddTask(task *Task) {
	if task == nil {
		return
	}
	p.tasks = append(p.tasks, task)
}

// RemoveTask drops the first task with the given id.
func (p *Project) RemoveTask(taskID string) error {
	for i, task := range p.tasks {
		if task.id == taskID {
			p.tasks = append(p.tasks[:i], p.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
}

func (p *Project) TasksByStatus(done bool) []*Task {
	var out []*Task
	for _, task := range p.tasks {
		if task.done == done {
			out = append(out, task)
		}
	}
	return out
}

// TaskByID returns nil when the project has no such task.
func (p *Project) TaskByID(taskID string) *Task {
	for _, task := range p.tasks {
		if task.id == taskID {
			return task
		}
	}
	return nil
}

func (p *Project) String() string {
	return fmt.Sprintf("Project(id=%s, title=%q, tasks=%d)", p.id, p.title, len(p.tasks))
}

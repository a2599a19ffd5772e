package console

import (
	"fmt"

	"task-tracker/internal/model"
)

// SeedDemo fills user with a sample study project; the first task comes back closed.
func SeedDemo(user *model.User) (*model.Project, error) {
	project := user.CreateProject("Учёба", "Подготовка к экзаменам")

	read, err := model.NewTask("Прочитать главу 1", "Изучить основы", model.PriorityHigh, nil)
	if err != nil {
		return nil, fmt.Errorf("seed task: %w", err)
	}
	practice, err := model.NewTask("Сделать упражнения", "Закрепить материал", model.PriorityMedium, nil)
	if err != nil {
		return nil, fmt.Errorf("seed task: %w", err)
	}

	project.AddTask(read)
	project.AddTask(practice)
	read.MarkAsDone()
	return project, nil
}

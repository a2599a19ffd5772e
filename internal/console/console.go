package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/service"
)

const (
	cmdCreateProject   = "1"
	cmdListProjects    = "2"
	cmdCreateTask      = "3"
	cmdListProjectTask = "4"
	cmdCompleteTask    = "5"
	cmdAllTasks        = "6"
	cmdOverdueTasks    = "7"
	cmdTasksByPriority = "8"
	cmdExit            = "0"
)

const noDueDate = "—"

// errInputClosed ends the session when the input stream runs dry mid-dialog.
var errInputClosed = errors.New("input closed")

// Session is one interactive run over a single user's projects.
// Every access to the user happens under mu so that the reminder job
// and the menu loop never touch the model at the same time.
type Session struct {
	in        *bufio.Scanner
	out       io.Writer
	reminders *service.ReminderService
	loc       *time.Location
	now       func() time.Time

	mu   sync.Mutex
	user *model.User
}

func New(in io.Reader, out io.Writer, reminders *service.ReminderService, loc *time.Location) *Session {
	if loc == nil {
		loc = time.Local
	}
	return &Session{
		in:        bufio.NewScanner(in),
		out:       out,
		reminders: reminders,
		loc:       loc,
		now:       time.Now,
	}
}

// Login attaches a freshly created user to the session.
func (s *Session) Login(username, fullName, email string) *model.User {
	user := model.NewUser(username, fullName, email)
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	log.Printf("[info] session user=%s username=%q", user.ID(), user.Username())
	return user
}

// Run drives the menu until the user exits, input ends or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	s.println("Добро пожаловать в систему управления задачами!")

	if s.currentUser() == nil {
		if err := s.askProfile(); err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.mu.Lock()
		s.printMenu()
		s.printf("Выберите пункт меню: ")
		s.mu.Unlock()

		command, err := s.scanLine()
		if err != nil {
			if errors.Is(err, errInputClosed) {
				s.println("Ввод завершён. До свидания!")
				return nil
			}
			return err
		}

		if command == cmdExit {
			s.println("Выход из приложения. До свидания!")
			return nil
		}

		if err := s.dispatch(command); err != nil {
			if errors.Is(err, errInputClosed) {
				s.println("Ввод завершён. До свидания!")
				return nil
			}
			return err
		}
	}
}

// RemindOverdue prints the overdue digest if the menu is idle and something is overdue.
func (s *Session) RemindOverdue(now time.Time) {
	if !s.mu.TryLock() {
		log.Printf("[info] reminder skipped: session busy")
		return
	}
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	text, ok := s.reminders.OverdueSummary(s.user, now)
	if !ok {
		return
	}
	s.printf("\n%s\n", text)
	log.Printf("[info] overdue reminder sent user=%s", s.user.ID())
}

func (s *Session) dispatch(command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch command {
	case cmdCreateProject:
		return s.handleCreateProject()
	case cmdListProjects:
		s.handleListProjects()
	case cmdCreateTask:
		return s.handleCreateTask()
	case cmdListProjectTask:
		return s.handleListProjectTasks()
	case cmdCompleteTask:
		return s.handleCompleteTask()
	case cmdAllTasks:
		s.handleAllTasks()
	case cmdOverdueTasks:
		s.handleOverdueTasks()
	case cmdTasksByPriority:
		return s.handleTasksByPriority()
	default:
		s.println("Неизвестная команда, попробуйте снова.")
	}
	return nil
}

func (s *Session) askProfile() error {
	username, err := s.readLine("Введите логин пользователя: ")
	if err != nil {
		return err
	}
	fullName, err := s.readLine("Введите полное имя пользователя: ")
	if err != nil {
		return err
	}
	email, err := s.readLine("Введите email пользователя: ")
	if err != nil {
		return err
	}
	user := s.Login(username, fullName, email)
	s.printf("\nПользователь создан: %s\n", user)
	return nil
}

func (s *Session) handleCreateProject() error {
	title, err := s.readLine("Название проекта: ")
	if err != nil {
		return err
	}
	description, err := s.readLine("Описание проекта (можно оставить пустым): ")
	if err != nil {
		return err
	}

	project := s.user.CreateProject(title, description)
	log.Printf("[info] project created id=%s user=%s", project.ID(), s.user.ID())
	s.printf("Проект создан: %s\n", project)
	return nil
}

func (s *Session) handleListProjects() {
	projects := s.user.Projects()
	if len(projects) == 0 {
		s.println("У пользователя пока нет проектов.")
		return
	}
	s.println("\nПроекты пользователя:")
	for _, project := range projects {
		s.printf("- %s (id=%s, задач: %d)\n", project.Title(), project.ID(), len(project.Tasks()))
	}
}

func (s *Session) handleCreateTask() error {
	project, err := s.chooseProject()
	if err != nil || project == nil {
		return err
	}

	title, err := s.readLine("Название задачи: ")
	if err != nil {
		return err
	}
	description, err := s.readLine("Описание задачи: ")
	if err != nil {
		return err
	}
	priority, err := s.readLine("Приоритет (Low, Medium, High, по умолчанию Medium): ")
	if err != nil {
		return err
	}
	dueInput, err := s.readLine("Срок выполнения (в формате YYYY-MM-DD HH:MM или пусто): ")
	if err != nil {
		return err
	}

	var dueDate *time.Time
	if dueInput != "" {
		parsed, err := time.ParseInLocation(model.DateTimeLayout, dueInput, s.loc)
		if err != nil {
			s.println("Некорректный формат даты, срок не будет установлен.")
		} else {
			dueDate = &parsed
		}
	}

	task, err := model.NewTask(title, description, model.Priority(priority), dueDate)
	if err != nil {
		s.printf("Ошибка при создании задачи: %v\n", err)
		return nil
	}

	project.AddTask(task)
	log.Printf("[info] task created id=%s project=%s priority=%s", task.ID(), project.ID(), task.Priority())
	s.printf("Задача создана: %s\n", task)
	return nil
}

func (s *Session) handleListProjectTasks() error {
	project, err := s.chooseProject()
	if err != nil || project == nil {
		return err
	}

	tasks := project.Tasks()
	if len(tasks) == 0 {
		s.println("В этом проекте пока нет задач.")
		return nil
	}

	now := s.now()
	s.printf("\nЗадачи проекта %s:\n", project.Title())
	for _, task := range tasks {
		s.printf("%s", s.reminders.FormatTask(task, now))
	}
	return nil
}

func (s *Session) handleCompleteTask() error {
	project, err := s.chooseProject()
	if err != nil || project == nil {
		return err
	}
	task, err := s.chooseTask(project)
	if err != nil || task == nil {
		return err
	}

	task.MarkAsDone()
	log.Printf("[info] task completed id=%s project=%s", task.ID(), project.ID())
	s.println("Задача отмечена как выполненная.")
	return nil
}

func (s *Session) handleAllTasks() {
	tasks := s.user.AllTasks()
	if len(tasks) == 0 {
		s.println("У пользователя нет задач.")
		return
	}
	s.println("\nВсе задачи пользователя:")
	for _, task := range tasks {
		s.printf("- %s (id=%s, статус=%s, приоритет=%s)\n", task.Title(), task.ID(), statusMark(task), task.Priority())
	}
}

func (s *Session) handleOverdueTasks() {
	tasks := s.user.OverdueTasksAt(s.now())
	if len(tasks) == 0 {
		s.println("Просроченных задач нет.")
		return
	}
	s.println("\nПросроченные задачи:")
	for _, task := range tasks {
		s.printf("- %s (id=%s, приоритет=%s, срок=%s)\n", task.Title(), task.ID(), task.Priority(), s.formatDue(task))
	}
}

func (s *Session) handleTasksByPriority() error {
	raw, err := s.readLine("Введите приоритет (Low, Medium, High): ")
	if err != nil {
		return err
	}

	tasks := s.user.TasksByPriority(model.Priority(raw))
	if len(tasks) == 0 {
		s.println("Задач с таким приоритетом нет.")
		return nil
	}
	s.printf("\nЗадачи с приоритетом %s:\n", raw)
	for _, task := range tasks {
		s.printf("- %s (id=%s, статус=%s)\n", task.Title(), task.ID(), statusMark(task))
	}
	return nil
}

// chooseProject returns nil without error when the user picked nothing valid.
func (s *Session) chooseProject() (*model.Project, error) {
	projects := s.user.Projects()
	if len(projects) == 0 {
		s.println("У пользователя нет проектов.")
		return nil, nil
	}

	s.println("\nСписок проектов:")
	for i, project := range projects {
		s.printf("%d. %s (id=%s)\n", i+1, project.Title(), project.ID())
	}

	idx, err := s.readIndex("Выберите номер проекта: ", len(projects), "Проект с таким номером не найден.")
	if err != nil || idx < 0 {
		return nil, err
	}
	return projects[idx], nil
}

func (s *Session) chooseTask(project *model.Project) (*model.Task, error) {
	tasks := project.Tasks()
	if len(tasks) == 0 {
		s.println("В проекте нет задач.")
		return nil, nil
	}

	s.println("\nСписок задач:")
	for i, task := range tasks {
		s.printf("%d. %s (id=%s, статус=%s)\n", i+1, task.Title(), task.ID(), statusMark(task))
	}

	idx, err := s.readIndex("Выберите номер задачи: ", len(tasks), "Задача с таким номером не найдена.")
	if err != nil || idx < 0 {
		return nil, err
	}
	return tasks[idx], nil
}

// readIndex reads a 1-based choice and converts it into a slice index.
// It returns -1 after telling the user what was wrong with the input.
func (s *Session) readIndex(prompt string, n int, notFound string) (int, error) {
	raw, err := s.readLine(prompt)
	if err != nil {
		return -1, err
	}
	if raw == "" || strings.Trim(raw, "0123456789") != "" {
		s.println("Некорректный ввод.")
		return -1, nil
	}
	choice, err := strconv.Atoi(raw)
	if err != nil || choice < 1 || choice > n {
		s.println(notFound)
		return -1, nil
	}
	return choice - 1, nil
}

func (s *Session) printMenu() {
	s.println("\n--- Меню ---")
	s.println("1. Создать проект")
	s.println("2. Показать проекты")
	s.println("3. Создать задачу в проекте")
	s.println("4. Показать задачи проекта")
	s.println("5. Отметить задачу как выполненную")
	s.println("6. Показать все задачи пользователя")
	s.println("7. Показать просроченные задачи")
	s.println("8. Показать задачи по приоритету")
	s.println("0. Выход")
}

func (s *Session) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	return s.scanLine()
}

func (s *Session) scanLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) currentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) formatDue(task *model.Task) string {
	due := task.DueDate()
	if due == nil {
		return noDueDate
	}
	return due.In(s.loc).Format(model.DateTimeLayout)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func statusMark(task *model.Task) string {
	if task.IsDone() {
		return "[x]"
	}
	return "[ ]"
}

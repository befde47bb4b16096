package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"github.com/hylla/syssla/internal/app"
	"github.com/hylla/syssla/internal/domain"
)

// Service captures the application operations the model drives.
type Service interface {
	EnsureDefaultProject(ctx context.Context) (domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, name string) (domain.Project, error)
	RenameProject(ctx context.Context, projectID, name string) (domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	ListTasks(ctx context.Context, projectID string) ([]domain.Task, error)
	SearchTasks(ctx context.Context, in app.SearchTasksFilter) ([]domain.Task, error)
	CreateTask(ctx context.Context, in app.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, in app.UpdateTaskInput) (domain.Task, error)
	ToggleCompletion(ctx context.Context, taskID string) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

// pane identifies one of the three grid columns.
type pane int

const (
	paneTasks pane = iota
	paneDetail
	paneProjects
	paneCount
)

// inputMode identifies the active dialog, if any.
type inputMode int

const (
	modeNone inputMode = iota
	modeAddTask
	modeEditTask
	modeConfirmDeleteTask
	modeConfirmDeleteProject
	modeAddProject
	modeRenameProject
	modeSettings
	modeFilter
)

// Task form focus positions, in tab order.
const (
	taskFieldTitle = iota
	taskFieldDescription
	taskFieldDue
	taskFieldPriority
	taskFieldProject
	taskFieldSave
	taskFieldCancel
	taskFieldCount
)

// Confirm dialog focus positions.
const (
	confirmFocusCancel = iota
	confirmFocusDelete
)

var priorityOptions = domain.Priorities()

// loadedMsg carries message data through update handling.
type loadedMsg struct {
	projects        []domain.Project
	tasks           []domain.Task
	selectedProject int
	err             error
}

// actionMsg carries message data through update handling.
type actionMsg struct {
	status      string
	err         error
	reload      bool
	focusTaskID string
	projectID   string
}

// themeSavedMsg reports the outcome of persisting a theme choice.
type themeSavedMsg struct {
	name string
	err  error
}

// Model represents model data used by this package.
type Model struct {
	svc    Service
	logger *log.Logger

	keys   keyMap
	help   help.Model
	styles styles
	md     markdownRenderer

	themeName        string
	dateFormat       string
	showDescriptions bool
	confirmDeletions bool
	saveTheme        func(name string) error

	width  int
	height int
	ready  bool
	err    error
	status string

	projects []domain.Project
	tasks    []domain.Task

	focus           pane
	mode            inputMode
	selectedProject int
	cursor          int
	hover           int
	detailScroll    int

	pendingProjectID   string
	pendingFocusTaskID string

	filterInput textinput.Model
	filterQuery string

	titleInput     textinput.Model
	descInput      textarea.Model
	dueInput       textinput.Model
	priorityIdx    int
	formProjectIdx int
	formFocus      int
	editingTaskID  string

	projectInput     textinput.Model
	editingProjectID string

	confirmTaskID    string
	confirmProjectID string
	confirmTitle     string
	confirmFocus     int

	settingsIdx       int
	settingsFocus     int
	settingsPrevTheme string
}

// NewModel constructs a new value for this package.
func NewModel(svc Service, opts ...Option) Model {
	h := help.New()
	h.ShowAll = false

	filterInput := textinput.New()
	filterInput.Prompt = "/"
	filterInput.Placeholder = "title or description"
	filterInput.CharLimit = 120

	projectInput := textinput.New()
	projectInput.Prompt = ""
	projectInput.Placeholder = "project name"
	projectInput.CharLimit = 120

	titleInput := textinput.New()
	titleInput.Prompt = ""
	titleInput.Placeholder = "what needs doing?"
	titleInput.CharLimit = domain.MaxTitleLen

	descInput := textarea.New()
	descInput.Placeholder = "details (markdown allowed)"
	descInput.CharLimit = domain.MaxDescriptionLen
	descInput.ShowLineNumbers = false

	dueInput := textinput.New()
	dueInput.Prompt = ""
	dueInput.Placeholder = "YYYY-MM-DD (empty for none)"
	dueInput.CharLimit = 10

	m := Model{
		svc:              svc,
		logger:           log.Default(),
		keys:             newKeyMap(),
		help:             h,
		status:           "loading...",
		dateFormat:       "2006-01-02",
		showDescriptions: true,
		confirmDeletions: true,
		hover:            -1,
		filterInput:      filterInput,
		projectInput:     projectInput,
		titleInput:       titleInput,
		descInput:        descInput,
		dueInput:         dueInput,
	}
	m.setTheme(DefaultThemeName)
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// setTheme switches the active theme and rebuilds every derived style.
func (m *Model) setTheme(name string) {
	theme := ThemeByName(name)
	m.themeName = theme.Name
	m.styles = newStyles(theme)
}

// Init handles init.
func (m Model) Init() tea.Cmd {
	return m.loadData
}

// Update updates state for the requested operation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.projects = msg.projects
		m.tasks = msg.tasks
		m.selectedProject = msg.selectedProject
		m.hover = -1
		if m.pendingProjectID != "" {
			for idx, project := range m.projects {
				if project.ID == m.pendingProjectID {
					m.selectedProject = idx
					break
				}
			}
			m.pendingProjectID = ""
		}
		if m.pendingFocusTaskID != "" {
			for idx, task := range m.tasks {
				if task.ID == m.pendingFocusTaskID {
					m.cursor = idx
					break
				}
			}
			m.pendingFocusTaskID = ""
		}
		m.clampSelections()
		if m.status == "" || m.status == "loading..." {
			m.status = "ready"
		}
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.status = "error: " + msg.err.Error()
			m.logger.Warn("action failed", "err", msg.err)
			return m, nil
		}
		if msg.status != "" {
			m.status = msg.status
		}
		if msg.projectID != "" {
			m.pendingProjectID = msg.projectID
		}
		if msg.focusTaskID != "" {
			m.pendingFocusTaskID = msg.focusTaskID
		}
		if msg.reload {
			return m, m.loadData
		}
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.status = "theme not saved: " + msg.err.Error()
			return m, nil
		}
		m.status = "Theme saved: " + msg.name
		return m, nil

	case tea.KeyPressMsg:
		if m.help.ShowAll {
			if msg.String() == "esc" || key.Matches(msg, m.keys.toggleHelp) || key.Matches(msg, m.keys.quit) {
				m.help.ShowAll = false
			}
			return m, nil
		}
		switch m.mode {
		case modeNone:
			return m.handleNormalKey(msg)
		case modeAddTask, modeEditTask:
			return m.handleTaskFormKey(msg)
		case modeConfirmDeleteTask, modeConfirmDeleteProject:
			return m.handleConfirmKey(msg)
		case modeAddProject, modeRenameProject:
			return m.handleProjectFormKey(msg)
		case modeSettings:
			return m.handleSettingsKey(msg)
		case modeFilter:
			return m.handleFilterKey(msg)
		}
		return m, nil

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)

	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	default:
		return m, nil
	}
}

// resizeInputs keeps the dialog inputs sized to the dialog interior.
func (m *Model) resizeInputs() {
	inner := max(20, dialogWidth(m.width)-8)
	m.titleInput.SetWidth(inner)
	m.dueInput.SetWidth(inner)
	m.projectInput.SetWidth(inner)
	m.descInput.SetWidth(inner)
	m.filterInput.SetWidth(max(8, m.taskPaneInnerWidth()-2))
}

// handleNormalKey handles key presses while no dialog is open.
func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = true
		return m, nil

	case key.Matches(msg, m.keys.reload):
		m.status = "loading..."
		return m, m.loadData

	case key.Matches(msg, m.keys.nextPane):
		m.focus = (m.focus + 1) % paneCount
		return m, nil

	case key.Matches(msg, m.keys.prevPane):
		m.focus = (m.focus + paneCount - 1) % paneCount
		return m, nil

	case key.Matches(msg, m.keys.moveDown):
		return m.moveCursor(1)

	case key.Matches(msg, m.keys.moveUp):
		return m.moveCursor(-1)

	case key.Matches(msg, m.keys.addTask):
		return m, m.startTaskForm(nil)

	case key.Matches(msg, m.keys.editTask):
		if m.focus == paneProjects {
			if project, ok := m.currentProject(); ok {
				return m, m.startProjectForm(&project)
			}
			return m, nil
		}
		if task, ok := m.currentTask(); ok {
			return m, m.startTaskForm(&task)
		}
		m.status = "no task selected"
		return m, nil

	case key.Matches(msg, m.keys.toggleDone):
		if task, ok := m.currentTask(); ok {
			return m, m.toggleTaskCmd(task.ID)
		}
		m.status = "no task selected"
		return m, nil

	case key.Matches(msg, m.keys.deleteTask):
		if m.focus == paneProjects {
			return m.startConfirmDeleteProject()
		}
		return m.startConfirmDeleteTask()

	case key.Matches(msg, m.keys.deleteProject):
		return m.startConfirmDeleteProject()

	case key.Matches(msg, m.keys.newProject):
		return m, m.startProjectForm(nil)

	case key.Matches(msg, m.keys.renameProject):
		if project, ok := m.currentProject(); ok {
			return m, m.startProjectForm(&project)
		}
		return m, nil

	case key.Matches(msg, m.keys.filter):
		m.mode = modeFilter
		m.filterInput.SetValue(m.filterQuery)
		m.filterInput.CursorEnd()
		m.status = "filter"
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.settings):
		m.startSettings()
		return m, nil

	case key.Matches(msg, m.keys.yank):
		return m.yankCurrentTask()

	case msg.String() == "esc":
		if m.filterQuery != "" {
			m.filterQuery = ""
			m.status = "filter cleared"
			return m, m.loadData
		}
		return m, nil
	}
	return m, nil
}

// moveCursor moves selection within the focused pane.
func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	switch m.focus {
	case paneTasks:
		m.cursor = clamp(m.cursor+delta, 0, max(0, len(m.tasks)-1))
		m.detailScroll = 0
	case paneDetail:
		m.detailScroll = clamp(m.detailScroll+delta, 0, 500)
	case paneProjects:
		next := clamp(m.selectedProject+delta, 0, max(0, len(m.projects)-1))
		if next != m.selectedProject {
			m.selectedProject = next
			m.cursor = 0
			m.detailScroll = 0
			return m, m.loadData
		}
	}
	return m, nil
}

// handleMouseWheel scrolls the pane under the pointer.
func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNone || m.help.ShowAll {
		return m, nil
	}
	delta := 0
	switch msg.Button {
	case tea.MouseWheelUp:
		delta = -1
	case tea.MouseWheelDown:
		delta = 1
	default:
		return m, nil
	}
	listWidth, detailWidth, _ := paneWidths(m.width)
	switch {
	case msg.X < listWidth:
		m.cursor = clamp(m.cursor+delta, 0, max(0, len(m.tasks)-1))
	case msg.X < listWidth+detailWidth:
		m.detailScroll = clamp(m.detailScroll+delta, 0, 500)
	default:
		next := clamp(m.selectedProject+delta, 0, max(0, len(m.projects)-1))
		if next != m.selectedProject {
			m.selectedProject = next
			m.cursor = 0
			return m, m.loadData
		}
	}
	return m, nil
}

// handleMouseMotion tracks the hover row in the task table.
func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNone || m.help.ShowAll {
		return m, nil
	}
	if idx, ok := m.taskRowAt(msg.X, msg.Y); ok {
		m.hover = idx
	} else {
		m.hover = -1
	}
	return m, nil
}

// handleMouseClick moves focus and selection to the clicked row.
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNone || m.help.ShowAll {
		return m, nil
	}
	listWidth, detailWidth, _ := paneWidths(m.width)
	switch {
	case msg.X < listWidth:
		m.focus = paneTasks
		if idx, ok := m.taskRowAt(msg.X, msg.Y); ok {
			m.cursor = idx
			m.detailScroll = 0
		}
	case msg.X < listWidth+detailWidth:
		m.focus = paneDetail
	default:
		m.focus = paneProjects
		if idx, ok := m.projectRowAt(msg.Y); ok && idx != m.selectedProject {
			m.selectedProject = idx
			m.cursor = 0
			m.detailScroll = 0
			return m, m.loadData
		}
	}
	return m, nil
}

// taskRowAt maps terminal coordinates to a task index in the list pane.
func (m Model) taskRowAt(x, y int) (int, bool) {
	listWidth, _, _ := paneWidths(m.width)
	if x < 0 || x >= listWidth || len(m.tasks) == 0 {
		return 0, false
	}
	top := m.boardTop() + 1 + m.taskPaneHeaderLines()
	row := y - top
	if row < 0 {
		return 0, false
	}
	rowHeight := m.taskRowHeight()
	start, end := windowBounds(len(m.tasks), m.cursor, m.taskWindowSize())
	idx := start + row/rowHeight
	if idx >= end {
		return 0, false
	}
	return idx, true
}

// projectRowAt maps a terminal row to a project index in the side pane.
func (m Model) projectRowAt(y int) (int, bool) {
	if len(m.projects) == 0 {
		return 0, false
	}
	top := m.boardTop() + 3
	row := y - top
	start, end := windowBounds(len(m.projects), m.selectedProject, m.paneInnerHeight()-2)
	idx := start + row
	if row < 0 || idx >= end {
		return 0, false
	}
	return idx, true
}

// handleFilterKey handles keys while the filter input is active.
func (m Model) handleFilterKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNone
		m.filterInput.Blur()
		m.filterInput.SetValue(m.filterQuery)
		m.status = "ready"
		return m, nil
	case "enter":
		m.mode = modeNone
		m.filterInput.Blur()
		m.filterQuery = strings.TrimSpace(m.filterInput.Value())
		m.cursor = 0
		if m.filterQuery == "" {
			m.status = "filter cleared"
		} else {
			m.status = "filter: " + m.filterQuery
		}
		return m, m.loadData
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// startTaskForm opens the edit dialog for a new or existing task.
func (m *Model) startTaskForm(task *domain.Task) tea.Cmd {
	m.titleInput.SetValue("")
	m.descInput.SetValue("")
	m.dueInput.SetValue("")
	m.priorityIdx = priorityIndex(domain.PriorityMedium)
	m.formProjectIdx = clamp(m.selectedProject, 0, max(0, len(m.projects)-1))
	m.editingTaskID = ""
	m.mode = modeAddTask
	m.status = "new task"
	if task != nil {
		m.mode = modeEditTask
		m.status = "edit task"
		m.editingTaskID = task.ID
		m.titleInput.SetValue(task.Title)
		m.descInput.SetValue(task.Description)
		m.dueInput.SetValue(domain.FormatDueDate(task.DueAt))
		m.priorityIdx = priorityIndex(task.Priority)
		for idx, project := range m.projects {
			if project.ID == task.ProjectID {
				m.formProjectIdx = idx
				break
			}
		}
	}
	m.titleInput.CursorEnd()
	m.dueInput.CursorEnd()
	m.resizeInputs()
	return m.focusTaskFormField(taskFieldTitle)
}

// focusTaskFormField moves form focus, blurring every other field.
func (m *Model) focusTaskFormField(field int) tea.Cmd {
	m.formFocus = clamp(field, 0, taskFieldCount-1)
	m.titleInput.Blur()
	m.descInput.Blur()
	m.dueInput.Blur()
	switch m.formFocus {
	case taskFieldTitle:
		return m.titleInput.Focus()
	case taskFieldDescription:
		return m.descInput.Focus()
	case taskFieldDue:
		return m.dueInput.Focus()
	}
	return nil
}

// handleTaskFormKey handles keys while the task dialog is open.
func (m Model) handleTaskFormKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeDialog("canceled")
		return m, nil
	case "ctrl+s":
		return m.submitTaskForm()
	case "tab":
		return m, m.focusTaskFormField((m.formFocus + 1) % taskFieldCount)
	case "shift+tab":
		return m, m.focusTaskFormField((m.formFocus + taskFieldCount - 1) % taskFieldCount)
	case "enter":
		switch m.formFocus {
		case taskFieldSave:
			return m.submitTaskForm()
		case taskFieldCancel:
			m.closeDialog("canceled")
			return m, nil
		case taskFieldDescription:
			// Newline belongs to the textarea.
		default:
			return m, m.focusTaskFormField(m.formFocus + 1)
		}
	case "left", "h":
		switch m.formFocus {
		case taskFieldPriority:
			m.cyclePriority(-1)
			return m, nil
		case taskFieldProject:
			m.cycleFormProject(-1)
			return m, nil
		case taskFieldSave, taskFieldCancel:
			m.formFocus = taskFieldSave
			return m, nil
		}
	case "right", "l":
		switch m.formFocus {
		case taskFieldPriority:
			m.cyclePriority(1)
			return m, nil
		case taskFieldProject:
			m.cycleFormProject(1)
			return m, nil
		case taskFieldSave, taskFieldCancel:
			m.formFocus = taskFieldCancel
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case taskFieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case taskFieldDescription:
		m.descInput, cmd = m.descInput.Update(msg)
	case taskFieldDue:
		m.dueInput, cmd = m.dueInput.Update(msg)
	}
	return m, cmd
}

// cyclePriority cycles the priority selector.
func (m *Model) cyclePriority(delta int) {
	total := len(priorityOptions)
	m.priorityIdx = (m.priorityIdx + delta + total) % total
}

// cycleFormProject cycles the project selector.
func (m *Model) cycleFormProject(delta int) {
	if len(m.projects) == 0 {
		return
	}
	total := len(m.projects)
	m.formProjectIdx = (m.formProjectIdx + delta + total) % total
}

// submitTaskForm validates and persists the task dialog contents.
func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		m.status = "title is required"
		return m, m.focusTaskFormField(taskFieldTitle)
	}
	dueAt, err := domain.ParseDueDate(strings.TrimSpace(m.dueInput.Value()))
	if err != nil {
		m.status = "due date must be YYYY-MM-DD"
		return m, m.focusTaskFormField(taskFieldDue)
	}
	description := strings.TrimRight(m.descInput.Value(), "\n")
	priority := priorityOptions[clamp(m.priorityIdx, 0, len(priorityOptions)-1)]
	projectID := ""
	if len(m.projects) > 0 {
		projectID = m.projects[clamp(m.formProjectIdx, 0, len(m.projects)-1)].ID
	}
	editingID := m.editingTaskID
	m.closeDialog("saving...")
	if editingID != "" {
		return m, m.updateTaskCmd(app.UpdateTaskInput{
			TaskID:      editingID,
			ProjectID:   projectID,
			Title:       title,
			Description: description,
			Priority:    priority,
			DueAt:       dueAt,
		})
	}
	return m, m.createTaskCmd(app.CreateTaskInput{
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Priority:    priority,
		DueAt:       dueAt,
	})
}

// closeDialog returns to the base frame.
func (m *Model) closeDialog(status string) {
	m.mode = modeNone
	m.titleInput.Blur()
	m.descInput.Blur()
	m.dueInput.Blur()
	m.projectInput.Blur()
	m.filterInput.Blur()
	m.editingTaskID = ""
	m.editingProjectID = ""
	if status != "" {
		m.status = status
	}
}

// startProjectForm opens the dialog for a new or renamed project.
func (m *Model) startProjectForm(project *domain.Project) tea.Cmd {
	m.projectInput.SetValue("")
	m.editingProjectID = ""
	m.mode = modeAddProject
	m.status = "new project"
	if project != nil {
		if project.IsDefault() {
			m.mode = modeNone
			m.status = "the Inbox project cannot be renamed"
			return nil
		}
		m.mode = modeRenameProject
		m.status = "rename project"
		m.editingProjectID = project.ID
		m.projectInput.SetValue(project.Name)
	}
	m.projectInput.CursorEnd()
	m.resizeInputs()
	return m.projectInput.Focus()
}

// handleProjectFormKey handles keys while the project dialog is open.
func (m Model) handleProjectFormKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeDialog("canceled")
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.projectInput.Value())
		if name == "" {
			m.status = "name is required"
			return m, nil
		}
		editingID := m.editingProjectID
		m.closeDialog("saving...")
		if editingID != "" {
			return m, m.renameProjectCmd(editingID, name)
		}
		return m, m.createProjectCmd(name)
	}
	var cmd tea.Cmd
	m.projectInput, cmd = m.projectInput.Update(msg)
	return m, cmd
}

// startConfirmDeleteTask opens the delete confirmation for the current task.
func (m Model) startConfirmDeleteTask() (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		m.status = "no task selected"
		return m, nil
	}
	if !m.confirmDeletions {
		return m, m.deleteTaskCmd(task.ID)
	}
	m.mode = modeConfirmDeleteTask
	m.confirmTaskID = task.ID
	m.confirmTitle = task.Title
	m.confirmFocus = confirmFocusCancel
	m.status = "confirm delete"
	return m, nil
}

// startConfirmDeleteProject opens the delete confirmation for the current project.
func (m Model) startConfirmDeleteProject() (tea.Model, tea.Cmd) {
	project, ok := m.currentProject()
	if !ok {
		m.status = "no project selected"
		return m, nil
	}
	if project.IsDefault() {
		m.status = "the Inbox project cannot be deleted"
		return m, nil
	}
	if !m.confirmDeletions {
		return m, m.deleteProjectCmd(project.ID)
	}
	m.mode = modeConfirmDeleteProject
	m.confirmProjectID = project.ID
	m.confirmTitle = project.Name
	m.confirmFocus = confirmFocusCancel
	m.status = "confirm delete"
	return m, nil
}

// handleConfirmKey handles keys while a delete confirmation is open.
func (m Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	confirm := func() (tea.Model, tea.Cmd) {
		mode := m.mode
		taskID := m.confirmTaskID
		projectID := m.confirmProjectID
		m.confirmTaskID = ""
		m.confirmProjectID = ""
		m.closeDialog("deleting...")
		if mode == modeConfirmDeleteProject {
			return m, m.deleteProjectCmd(projectID)
		}
		return m, m.deleteTaskCmd(taskID)
	}

	switch msg.String() {
	case "esc", "n":
		m.confirmTaskID = ""
		m.confirmProjectID = ""
		m.closeDialog("canceled")
		return m, nil
	case "y":
		return confirm()
	case "left", "right", "h", "l", "tab", "shift+tab":
		if m.confirmFocus == confirmFocusCancel {
			m.confirmFocus = confirmFocusDelete
		} else {
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusDelete {
			return confirm()
		}
		m.confirmTaskID = ""
		m.confirmProjectID = ""
		m.closeDialog("canceled")
		return m, nil
	}
	return m, nil
}

// startSettings opens the settings dialog on the active theme.
func (m *Model) startSettings() {
	names := ThemeNames()
	m.settingsIdx = 0
	for idx, name := range names {
		if name == m.themeName {
			m.settingsIdx = idx
			break
		}
	}
	m.settingsPrevTheme = m.themeName
	m.settingsFocus = 0
	m.mode = modeSettings
	m.status = "settings"
}

// handleSettingsKey handles keys while the settings dialog is open.
func (m Model) handleSettingsKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	names := ThemeNames()
	switch msg.String() {
	case "esc":
		m.setTheme(m.settingsPrevTheme)
		m.closeDialog("canceled")
		return m, nil
	case "j", "down":
		if m.settingsFocus == 0 {
			m.settingsIdx = clamp(m.settingsIdx+1, 0, len(names)-1)
			m.setTheme(names[m.settingsIdx])
		}
		return m, nil
	case "k", "up":
		if m.settingsFocus == 0 {
			m.settingsIdx = clamp(m.settingsIdx-1, 0, len(names)-1)
			m.setTheme(names[m.settingsIdx])
		}
		return m, nil
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.settingsFocus = (m.settingsFocus + 1) % 3
		return m, nil
	case "enter":
		if m.settingsFocus == 2 {
			m.setTheme(m.settingsPrevTheme)
			m.closeDialog("canceled")
			return m, nil
		}
		name := names[clamp(m.settingsIdx, 0, len(names)-1)]
		m.setTheme(name)
		m.closeDialog("")
		return m, m.saveThemeCmd(name)
	}
	return m, nil
}

// yankCurrentTask copies the current task to the system clipboard.
func (m Model) yankCurrentTask() (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		m.status = "no task selected"
		return m, nil
	}
	marker := "[ ]"
	if task.Completed {
		marker = "[x]"
	}
	text := fmt.Sprintf("- %s %s", marker, task.Title)
	if task.DueAt != nil {
		text += " (due " + task.DueAt.Format(m.dateFormat) + ")"
	}
	if desc := strings.TrimSpace(task.Description); desc != "" {
		text += "\n" + desc
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.status = "clipboard unavailable: " + err.Error()
		return m, nil
	}
	m.status = "Yanked task to clipboard"
	return m, nil
}

// loadData loads required data for the current view.
func (m Model) loadData() tea.Msg {
	ctx := context.Background()
	if _, err := m.svc.EnsureDefaultProject(ctx); err != nil {
		return loadedMsg{err: err}
	}
	projects, err := m.svc.ListProjects(ctx)
	if err != nil {
		return loadedMsg{err: err}
	}
	if len(projects) == 0 {
		return loadedMsg{projects: projects}
	}
	idx := clamp(m.selectedProject, 0, len(projects)-1)
	if pending := strings.TrimSpace(m.pendingProjectID); pending != "" {
		for i, project := range projects {
			if project.ID == pending {
				idx = i
				break
			}
		}
	}
	projectID := projects[idx].ID

	var tasks []domain.Task
	if query := strings.TrimSpace(m.filterQuery); query != "" {
		tasks, err = m.svc.SearchTasks(ctx, app.SearchTasksFilter{ProjectID: projectID, Query: query})
	} else {
		tasks, err = m.svc.ListTasks(ctx, projectID)
	}
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{projects: projects, tasks: tasks, selectedProject: idx}
}

func (m Model) createTaskCmd(in app.CreateTaskInput) tea.Cmd {
	return func() tea.Msg {
		task, err := m.svc.CreateTask(context.Background(), in)
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "Task saved!", reload: true, focusTaskID: task.ID, projectID: task.ProjectID}
	}
}

func (m Model) updateTaskCmd(in app.UpdateTaskInput) tea.Cmd {
	return func() tea.Msg {
		task, err := m.svc.UpdateTask(context.Background(), in)
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "Task saved!", reload: true, focusTaskID: task.ID, projectID: task.ProjectID}
	}
}

func (m Model) toggleTaskCmd(taskID string) tea.Cmd {
	return func() tea.Msg {
		task, err := m.svc.ToggleCompletion(context.Background(), taskID)
		if err != nil {
			return actionMsg{err: err}
		}
		status := "Task reopened!"
		if task.Completed {
			status = "Task completed!"
		}
		return actionMsg{status: status, reload: true, focusTaskID: task.ID}
	}
}

func (m Model) deleteTaskCmd(taskID string) tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.DeleteTask(context.Background(), taskID); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "Task deleted!", reload: true}
	}
}

func (m Model) createProjectCmd(name string) tea.Cmd {
	return func() tea.Msg {
		project, err := m.svc.CreateProject(context.Background(), name)
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "Project saved!", reload: true, projectID: project.ID}
	}
}

func (m Model) renameProjectCmd(projectID, name string) tea.Cmd {
	return func() tea.Msg {
		project, err := m.svc.RenameProject(context.Background(), projectID, name)
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "Project saved!", reload: true, projectID: project.ID}
	}
}

func (m Model) deleteProjectCmd(projectID string) tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.DeleteProject(context.Background(), projectID); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "Project deleted, tasks moved to Inbox", reload: true}
	}
}

func (m Model) saveThemeCmd(name string) tea.Cmd {
	save := m.saveTheme
	return func() tea.Msg {
		if save == nil {
			return themeSavedMsg{name: name}
		}
		if err := save(name); err != nil {
			return themeSavedMsg{name: name, err: err}
		}
		return themeSavedMsg{name: name}
	}
}

// currentTask returns the task under the cursor.
func (m Model) currentTask() (domain.Task, bool) {
	if len(m.tasks) == 0 {
		return domain.Task{}, false
	}
	return m.tasks[clamp(m.cursor, 0, len(m.tasks)-1)], true
}

// currentProject returns the selected project.
func (m Model) currentProject() (domain.Project, bool) {
	if len(m.projects) == 0 {
		return domain.Project{}, false
	}
	return m.projects[clamp(m.selectedProject, 0, len(m.projects)-1)], true
}

// clampSelections clamps selections.
func (m *Model) clampSelections() {
	m.selectedProject = clamp(m.selectedProject, 0, max(0, len(m.projects)-1))
	m.cursor = clamp(m.cursor, 0, max(0, len(m.tasks)-1))
	if m.hover >= len(m.tasks) {
		m.hover = -1
	}
}

// Frame geometry. The header takes one row, the status line one, the help
// line two (rule plus text); the panes fill everything in between.
func (m Model) boardTop() int     { return 1 }
func (m Model) paneHeight() int   { return max(5, m.height-4) }
func (m Model) taskRowHeight() int {
	if m.showDescriptions {
		return 2
	}
	return 1
}

// paneInnerHeight is the number of rows inside a pane border.
func (m Model) paneInnerHeight() int {
	return max(1, m.paneHeight()-2)
}

// taskPaneHeaderLines counts the rows above the first task row inside the list pane.
func (m Model) taskPaneHeaderLines() int {
	if m.mode == modeFilter || strings.TrimSpace(m.filterQuery) != "" {
		return 2
	}
	return 1
}

// taskWindowSize is the number of task rows the list pane can show.
func (m Model) taskWindowSize() int {
	return max(1, (m.paneInnerHeight()-m.taskPaneHeaderLines())/m.taskRowHeight())
}

// taskPaneInnerWidth is the text width inside the list pane border and padding.
func (m Model) taskPaneInnerWidth() int {
	listWidth, _, _ := paneWidths(m.width)
	return max(4, listWidth-4)
}

// modeLabel names the current mode for the header.
func (m Model) modeLabel() string {
	switch m.mode {
	case modeNone:
		return "normal"
	case modeAddTask:
		return "new task"
	case modeEditTask:
		return "edit task"
	case modeConfirmDeleteTask, modeConfirmDeleteProject:
		return "confirm"
	case modeAddProject:
		return "new project"
	case modeRenameProject:
		return "rename project"
	case modeSettings:
		return "settings"
	case modeFilter:
		return "filter"
	}
	return ""
}

// View handles view.
func (m Model) View() tea.View {
	if m.err != nil {
		v := tea.NewView("error: " + m.err.Error() + "\n\npress r to retry • q quit\n")
		v.MouseMode = tea.MouseModeCellMotion
		v.AltScreen = true
		return v
	}
	if !m.ready {
		v := tea.NewView("loading...")
		v.MouseMode = tea.MouseModeCellMotion
		v.AltScreen = true
		return v
	}

	s := m.styles
	project, _ := m.currentProject()
	header := s.header.Render("syssla") + "  " + project.Name +
		s.status.Render("  ["+m.modeLabel()+"]")
	if m.filterQuery != "" {
		header += s.status.Render("  filter: " + m.filterQuery)
	}

	listWidth, detailWidth, sideWidth := paneWidths(m.width)
	paneHeight := m.paneHeight()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderTasksPane(listWidth, paneHeight),
		m.renderDetailPane(detailWidth, paneHeight),
		m.renderProjectsPane(sideWidth, paneHeight),
	)

	statusLine := s.status.Render(truncate(m.status, max(0, m.width-1)))

	helpBubble := m.help
	helpBubble.ShowAll = false
	helpBubble.SetWidth(max(0, m.width-2))
	helpLine := lipgloss.NewStyle().
		Foreground(s.theme.Muted).
		BorderTop(true).
		BorderForeground(s.theme.Muted).
		Padding(0, 1).
		Width(max(0, m.width)).
		Render(helpBubble.View(m.keys))

	content := strings.Join([]string{header, body, statusLine}, "\n")
	contentHeight := lipgloss.Height(content)
	if m.height > 0 {
		contentHeight = max(0, m.height-lipgloss.Height(helpLine))
		content = fitLines(content, contentHeight)
	}
	fullContent := content + "\n" + helpLine

	if m.help.ShowAll {
		fullContent = m.overlayCentered(fullContent, m.renderHelpOverlay())
	} else if dialog := m.renderDialog(); dialog != "" {
		fullContent = m.overlayDialog(fullContent, dialog)
	}

	v := tea.NewView(fullContent)
	v.MouseMode = tea.MouseModeCellMotion
	v.AltScreen = true
	return v
}

// renderTasksPane renders the narrow task-list column.
func (m Model) renderTasksPane(width, height int) string {
	s := m.styles
	focused := m.focus == paneTasks
	inner := max(4, width-4)

	titleStyle := s.paneTitle
	if focused {
		titleStyle = s.paneTitleFocused
	}
	title := fmt.Sprintf("Tasks (%d)", len(m.tasks))
	lines := []string{titleStyle.Render(truncate(title, inner))}
	if m.mode == modeFilter {
		lines = append(lines, m.filterInput.View())
	} else if m.filterQuery != "" {
		lines = append(lines, s.hint.Render(truncate("/"+m.filterQuery, inner)))
	}

	if len(m.tasks) == 0 {
		lines = append(lines, s.hint.Render("(no tasks)"))
	} else {
		start, end := windowBounds(len(m.tasks), m.cursor, m.taskWindowSize())
		now := time.Now().UTC()
		for idx := start; idx < end; idx++ {
			task := m.tasks[idx]
			style := s.rowStyle(task.Completed, idx == m.cursor, idx == m.hover, focused)
			lines = append(lines, style.Width(inner).Render(truncate(m.taskRowLabel(task, now), inner)))
			if m.showDescriptions {
				sub := strings.TrimSpace(strings.SplitN(task.Description, "\n", 2)[0])
				if sub == "" {
					sub = "·"
				}
				lines = append(lines, style.Width(inner).Render(truncate("  "+sub, inner)))
			}
		}
	}

	paneStyle := s.pane
	if focused {
		paneStyle = s.paneFocused
	}
	content := fitLines(strings.Join(lines, "\n"), height-2)
	return paneStyle.Width(width - 2).Height(height - 2).Render(content)
}

// taskRowLabel renders the single-line summary of one task row.
func (m Model) taskRowLabel(task domain.Task, now time.Time) string {
	marker := "[ ]"
	if task.Completed {
		marker = "[x]"
	}
	label := marker + " " + task.Title
	if task.DueAt != nil {
		due := task.DueAt.Format(m.dateFormat)
		if task.Overdue(now) {
			due = "!" + due
		}
		label += " · " + due
	}
	return label
}

// renderDetailPane renders the wide middle column with the selected task.
func (m Model) renderDetailPane(width, height int) string {
	s := m.styles
	focused := m.focus == paneDetail
	inner := max(8, width-4)

	titleStyle := s.paneTitle
	if focused {
		titleStyle = s.paneTitleFocused
	}
	lines := []string{titleStyle.Render("Detail")}

	task, ok := m.currentTask()
	if !ok {
		lines = append(lines, s.hint.Render("(no task selected)"))
	} else {
		title := task.Title
		titleLine := lipgloss.NewStyle().Bold(true).Foreground(s.theme.Text).Render(truncate(title, inner))
		if task.Completed {
			titleLine = s.completed.Render(truncate(title, inner))
		}
		lines = append(lines, titleLine, "")

		state := "open"
		if task.Completed {
			state = "done"
		}
		lines = append(lines, s.hint.Render("state: "+state+" · priority: "+string(task.Priority)))
		due := "-"
		if task.DueAt != nil {
			due = task.DueAt.Format(m.dateFormat)
			if !task.Completed && task.Overdue(time.Now().UTC()) {
				due = s.overdue.Render(due + " (overdue)")
			}
		}
		lines = append(lines, s.hint.Render("due: ")+due)
		if project, ok := m.currentProject(); ok {
			lines = append(lines, s.hint.Render("project: "+project.Name))
		}
		lines = append(lines,
			s.hint.Render("created: "+task.CreatedAt.Format(m.dateFormat)+" · updated: "+task.UpdatedAt.Format(m.dateFormat)))

		if desc := strings.TrimSpace(task.Description); desc != "" {
			md := m.md
			rendered := md.render(desc, inner, s.theme.Dark())
			lines = append(lines, "")
			lines = append(lines, strings.Split(rendered, "\n")...)
		}
	}

	scroll := clamp(m.detailScroll, 0, max(0, len(lines)-m.paneInnerHeight()))
	lines = lines[scroll:]

	paneStyle := s.pane
	if focused {
		paneStyle = s.paneFocused
	}
	content := fitLines(strings.Join(lines, "\n"), height-2)
	return paneStyle.Width(width - 2).Height(height - 2).Render(content)
}

// renderProjectsPane renders the project column.
func (m Model) renderProjectsPane(width, height int) string {
	s := m.styles
	focused := m.focus == paneProjects
	inner := max(6, width-4)

	titleStyle := s.paneTitle
	if focused {
		titleStyle = s.paneTitleFocused
	}
	lines := []string{titleStyle.Render("Projects"), ""}

	if len(m.projects) == 0 {
		lines = append(lines, s.hint.Render("(none)"))
	} else {
		start, end := windowBounds(len(m.projects), m.selectedProject, m.paneInnerHeight()-2)
		for idx := start; idx < end; idx++ {
			project := m.projects[idx]
			label := project.Name
			if project.IsDefault() {
				label = "◦ " + label
			} else {
				label = "  " + label
			}
			style := s.rowStyle(false, idx == m.selectedProject, false, focused)
			if idx == m.selectedProject && !focused {
				style = style.Bold(true)
			}
			lines = append(lines, style.Width(inner).Render(truncate(label, inner)))
		}
	}

	paneStyle := s.pane
	if focused {
		paneStyle = s.paneFocused
	}
	content := fitLines(strings.Join(lines, "\n"), height-2)
	return paneStyle.Width(width - 2).Height(height - 2).Render(content)
}

// renderDialog renders the active modal, if any. Dialogs take the full frame
// height and span the detail and project columns.
func (m Model) renderDialog() string {
	switch m.mode {
	case modeAddTask, modeEditTask:
		return m.renderTaskForm()
	case modeConfirmDeleteTask, modeConfirmDeleteProject:
		return m.renderConfirm()
	case modeAddProject, modeRenameProject:
		return m.renderProjectForm()
	case modeSettings:
		return m.renderSettings()
	}
	return ""
}

// dialogFrame wraps dialog body lines in the standard dialog chrome with a
// bottom-anchored button row.
func (m Model) dialogFrame(title string, body []string, buttons ...dialogButton) string {
	s := m.styles
	width := dialogWidth(m.width)
	height := max(8, m.height)
	innerWidth := max(10, width-4)
	innerHeight := max(4, height-2)

	lines := make([]string, 0, innerHeight)
	lines = append(lines, s.dialogTitle.Render(truncate(title, innerWidth)))
	lines = append(lines, body...)

	buttonRow := s.renderButtons(innerWidth, buttons...)
	used := len(lines) + lipgloss.Height(buttonRow)
	for len(lines) < innerHeight-lipgloss.Height(buttonRow) && used < innerHeight {
		lines = append(lines, "")
		used++
	}
	lines = append(lines, buttonRow)

	content := fitLines(strings.Join(lines, "\n"), innerHeight)
	return s.dialog.Width(width - 2).Height(innerHeight).Render(content)
}

// renderTaskForm renders the add/edit dialog.
func (m Model) renderTaskForm() string {
	s := m.styles
	width := dialogWidth(m.width)
	innerWidth := max(10, width-6)

	field := func(focus int) lipgloss.Style {
		if m.formFocus == focus {
			return s.fieldFocused
		}
		return s.field
	}

	title := "New Task"
	if m.mode == modeEditTask {
		title = "Edit Task"
	}

	// The description field expands to fill whatever height the fixed
	// fields leave over.
	fixedRows := 1 + 3 + 3 + 1 + 1 + 2
	descHeight := max(3, m.height-2-fixedRows-6)
	descInput := m.descInput
	descInput.SetWidth(innerWidth - 2)
	descInput.SetHeight(descHeight)

	priority := string(priorityOptions[clamp(m.priorityIdx, 0, len(priorityOptions)-1)])
	projectName := "-"
	if len(m.projects) > 0 {
		projectName = m.projects[clamp(m.formProjectIdx, 0, len(m.projects)-1)].Name
	}

	body := []string{
		s.fieldLabel.Render("Title"),
		field(taskFieldTitle).Width(innerWidth).Render(m.titleInput.View()),
		s.fieldLabel.Render("Description"),
		field(taskFieldDescription).Width(innerWidth).Render(descInput.View()),
		s.fieldLabel.Render("Due date"),
		field(taskFieldDue).Width(innerWidth).Render(m.dueInput.View()),
		m.renderSelector("Priority", "‹ "+priority+" ›", m.formFocus == taskFieldPriority),
		m.renderSelector("Project", "‹ "+projectName+" ›", m.formFocus == taskFieldProject),
		s.hint.Render("tab next field · ctrl+s save · esc cancel"),
	}

	return m.dialogFrame(title, body,
		dialogButton{Label: "Save", Focused: m.formFocus == taskFieldSave},
		dialogButton{Label: "Cancel", Focused: m.formFocus == taskFieldCancel},
	)
}

// renderSelector renders one left/right cycling selector line.
func (m Model) renderSelector(label, value string, focused bool) string {
	s := m.styles
	valueStyle := lipgloss.NewStyle().Foreground(s.theme.Text)
	if focused {
		valueStyle = valueStyle.Bold(true).Foreground(s.theme.Accent)
	}
	return s.selectorLabel.Render(label+": ") + valueStyle.Render(value)
}

// renderConfirm renders the delete confirmation dialog.
func (m Model) renderConfirm() string {
	s := m.styles
	title := "Delete Task"
	message := fmt.Sprintf("Delete %q?", truncate(m.confirmTitle, 48))
	hint := "This cannot be undone."
	if m.mode == modeConfirmDeleteProject {
		title = "Delete Project"
		hint = "Its tasks move to Inbox."
	}
	body := []string{
		"",
		message,
		s.hint.Render(hint),
		"",
		s.hint.Render("y delete · n cancel · tab switch"),
	}
	return m.dialogFrame(title, body,
		dialogButton{Label: "Cancel", Focused: m.confirmFocus == confirmFocusCancel},
		dialogButton{Label: "Delete", Destructive: true, Focused: m.confirmFocus == confirmFocusDelete},
	)
}

// renderProjectForm renders the new/rename project dialog.
func (m Model) renderProjectForm() string {
	s := m.styles
	width := dialogWidth(m.width)
	innerWidth := max(10, width-6)
	title := "New Project"
	if m.mode == modeRenameProject {
		title = "Rename Project"
	}
	body := []string{
		s.fieldLabel.Render("Name"),
		s.fieldFocused.Width(innerWidth).Render(m.projectInput.View()),
		s.hint.Render("enter save · esc cancel"),
	}
	return m.dialogFrame(title, body,
		dialogButton{Label: "Save", Focused: true},
		dialogButton{Label: "Cancel"},
	)
}

// renderSettings renders the theme selection dialog.
func (m Model) renderSettings() string {
	s := m.styles
	names := ThemeNames()
	body := []string{s.hint.Render("Theme"), ""}
	for idx, name := range names {
		cursor := "  "
		if idx == m.settingsIdx {
			cursor = "› "
		}
		line := cursor + name
		style := lipgloss.NewStyle().Foreground(s.theme.Text)
		if idx == m.settingsIdx && m.settingsFocus == 0 {
			style = style.Background(s.cursorRow.GetBackground())
		}
		body = append(body, style.Render(line))
	}
	body = append(body, "", s.hint.Render("j/k preview · enter save · esc cancel"))
	return m.dialogFrame("Settings", body,
		dialogButton{Label: "Save", Focused: m.settingsFocus == 1},
		dialogButton{Label: "Cancel", Focused: m.settingsFocus == 2},
	)
}

// renderHelpOverlay renders the expanded key reference.
func (m Model) renderHelpOverlay() string {
	s := m.styles
	helpBubble := m.help
	helpBubble.ShowAll = true
	helpBubble.SetWidth(max(24, m.width-12))
	lines := []string{
		s.dialogTitle.Render("syssla help"),
		"",
		helpBubble.View(m.keys),
		"",
		s.hint.Render("esc close"),
	}
	return s.dialog.Render(strings.Join(lines, "\n"))
}

// overlayDialog composes a dialog over the base frame, aligned to the two
// rightmost grid columns.
func (m Model) overlayDialog(base, dialog string) string {
	width := max(1, m.width)
	height := max(1, m.height)
	base = fitLines(base, height)
	listWidth, _, _ := paneWidths(width)

	canvas := lipgloss.NewCanvas(width, height)
	canvas.Compose(lipgloss.NewLayer(base).X(0).Y(0).Z(0))
	canvas.Compose(lipgloss.NewLayer(dialog).X(listWidth).Y(0).Z(10))
	return canvas.Render()
}

// overlayCentered composes an overlay centered over the base frame.
func (m Model) overlayCentered(base, overlay string) string {
	width := max(1, m.width)
	height := max(1, m.height)
	base = fitLines(base, height)

	canvas := lipgloss.NewCanvas(width, height)
	canvas.Compose(lipgloss.NewLayer(base).X(0).Y(0).Z(0))
	centered := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay)
	canvas.Compose(lipgloss.NewLayer(centered).X(0).Y(0).Z(10))
	return canvas.Render()
}

// priorityIndex resolves the selector index for a priority.
func priorityIndex(priority domain.Priority) int {
	for i, p := range priorityOptions {
		if p == priority {
			return i
		}
	}
	return 1
}

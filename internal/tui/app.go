package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error
	hasDark   func() bool

	// State (slices - contain pointers)
	tasks []*domain.Task

	// Loaded state
	summary  domain.Summary
	profile  domain.UserProfile
	settings domain.UserSettings
	inbox    inbox

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model

	// Input state (large structs)
	titleInput  textinput.Model
	descInput   textinput.Model
	filterInput textinput.Model

	// String state
	view          domain.View
	confirmTaskID string

	// Numeric state (smaller types last)
	mode          Mode
	page          Page
	confirmAction ConfirmAction
	statusCursor  int
	width         int
	height        int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "Task description (optional)"
	di.CharLimit = 1000

	fi := textinput.New()
	fi.Placeholder = "Filter tasks..."
	fi.CharLimit = 100

	styles := DefaultStyles()
	delegate := newTaskDelegate(styles, c.Clock.Now(), false)
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	return &Model{
		container:   c,
		hasDark:     lipgloss.HasDarkBackground,
		mode:        ModeNormal,
		page:        PageDashboard,
		view:        domain.ViewBoard,
		settings:    domain.DefaultSettings(),
		inbox:       newInbox(),
		keys:        DefaultKeyMap(),
		styles:      styles,
		help:        help.New(),
		taskList:    taskList,
		titleInput:  ti,
		descInput:   di,
		filterInput: fi,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks returns a command that loads tasks, the summary and preferences.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		tasks, err := m.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		dash, err := m.container.ShowDashboardUseCase().Execute(ctx, usecase.ShowDashboardInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		settings, err := m.container.ShowSettingsUseCase().Execute(ctx, usecase.ShowSettingsInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{
			Tasks:    tasks.Tasks,
			View:     tasks.View,
			Summary:  dash.Summary,
			Profile:  dash.Profile,
			Settings: settings.Settings,
		}
	}
}

// applySettings rebuilds the theme and the list delegate from the settings.
func (m *Model) applySettings(s domain.UserSettings) {
	m.settings = s
	m.styles = NewStyles(PaletteFor(s.Appearance.Theme, m.hasDark))
	m.taskList.SetDelegate(newTaskDelegate(m.styles, m.now(), s.Appearance.CompactMode))
}

func (m *Model) now() time.Time {
	if !m.summary.Now.IsZero() {
		return m.summary.Now
	}
	return m.container.Clock.Now()
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.taskList.SelectedItem() == nil {
		return nil
	}
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		return ti.task
	}
	return nil
}

// visibleTasks returns the tasks matching the filter input, in store order.
func (m *Model) visibleTasks() []*domain.Task {
	filter := domain.TaskFilter{Search: strings.TrimSpace(m.filterInput.Value())}
	visible := make([]*domain.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if filter.Match(t) {
			visible = append(visible, t)
		}
	}
	return visible
}

// updateTaskList updates the task list items from tasks.
// In the board view items are grouped by status so the cursor walks the columns in order.
func (m *Model) updateTaskList() {
	visible := m.visibleTasks()
	if m.view == domain.ViewBoard {
		visible = groupByStatus(visible)
	}
	items := make([]list.Item, 0, len(visible))
	for _, task := range visible {
		items = append(items, taskItem{task: task})
	}
	m.taskList.SetItems(items)
}

// groupByStatus orders tasks by status column, keeping store order within a column.
func groupByStatus(tasks []*domain.Task) []*domain.Task {
	grouped := make([]*domain.Task, 0, len(tasks))
	for _, s := range domain.AllStatuses() {
		for _, t := range tasks {
			if t.Status == s {
				grouped = append(grouped, t)
			}
		}
	}
	return grouped
}

// updateLayoutSizes resizes components after a window change.
func (m *Model) updateLayoutSizes() {
	listHeight := m.height - 10
	if listHeight < 5 {
		listHeight = 5
	}
	listWidth := m.width - 4
	if listWidth < 40 {
		listWidth = 40
	}
	m.taskList.SetSize(listWidth, listHeight)
	m.titleInput.Width = min(listWidth-10, 60)
	m.descInput.Width = min(listWidth-10, 60)
}

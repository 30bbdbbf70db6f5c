package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.summary = msg.Summary
		m.profile = msg.Profile
		m.view = msg.View
		m.applySettings(msg.Settings)
		m.inbox.SetNotifications(msg.Summary.Notifications)
		m.updateTaskList()
		return m, nil

	case MsgTaskCreated:
		m.mode = ModeNormal
		m.page = PageTasks
		m.titleInput.Reset()
		m.descInput.Reset()
		return m, m.loadTasks()

	case MsgTaskDeleted, MsgTasksCleared:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmTaskID = ""
		return m, m.loadTasks()

	case MsgTaskStatusUpdated:
		m.mode = ModeNormal
		return m, m.loadTasks()

	case MsgViewChanged:
		m.view = msg.View
		m.updateTaskList()
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input based on current mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeFilter:
		return m.handleFilterMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeInputTitle:
		return m.handleInputTitleMode(msg)
	case ModeInputDesc:
		return m.handleInputDescMode(msg)
	case ModeChangeStatus:
		return m.handleChangeStatusMode(msg)
	case ModeNotifications:
		return m.handleNotificationsMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeDetail:
		return m.handleDetailMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Keys available on every page
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Switch):
		if m.page == PageDashboard {
			m.page = PageTasks
		} else {
			m.page = PageDashboard
		}
		return m, nil

	case key.Matches(msg, m.keys.Notifications):
		m.mode = ModeNotifications
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputTitle
		m.titleInput.Focus()
		return m, nil
	}

	if m.page != PageTasks {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.PrevPage):
		m.taskList.Paginator.PrevPage()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.taskList.Paginator.NextPage()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.SelectedTask() == nil {
			return m, nil
		}
		m.mode = ModeDetail
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.mode = ModeFilter
		m.filterInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.ToggleView):
		next := domain.ViewBoard
		if m.view == domain.ViewBoard {
			next = domain.ViewList
		}
		return m, m.setView(next)

	case key.Matches(msg, m.keys.Done):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		next := domain.StatusCompleted
		if task.IsCompleted() {
			next = domain.StatusTodo
		}
		return m, m.setStatus(task.ID, next)

	case key.Matches(msg, m.keys.EditStatus):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeChangeStatus
		m.statusCursor = statusIndex(task.Status)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if len(m.tasks) == 0 {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmClear
		return m, nil
	}

	return m, nil
}

func statusIndex(s domain.Status) int {
	for i, st := range domain.AllStatuses() {
		if st == s {
			return i
		}
	}
	return 0
}

// handleFilterMode handles keys in filter mode.
func (m *Model) handleFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.updateTaskList()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = ModeNormal
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.updateTaskList()
	return m, cmd
}

// handleConfirmMode handles keys in confirm mode.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch m.confirmAction {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmDelete:
			return m, m.deleteTask(m.confirmTaskID)
		case ConfirmClear:
			return m, m.clearTasks()
		}
	}

	return m, nil
}

// handleInputTitleMode handles keys in title input mode.
func (m *Model) handleInputTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.titleInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		if m.titleInput.Value() == "" {
			return m, nil
		}
		m.mode = ModeInputDesc
		m.titleInput.Blur()
		m.descInput.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// handleInputDescMode handles keys in description input mode.
func (m *Model) handleInputDescMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeInputTitle
		m.descInput.Reset()
		m.descInput.Blur()
		m.titleInput.Focus()
		return m, nil

	case msg.Type == tea.KeyEnter:
		title := m.titleInput.Value()
		desc := m.descInput.Value()
		return m, m.createTask(title, desc)
	}

	var cmd tea.Cmd
	m.descInput, cmd = m.descInput.Update(msg)
	return m, cmd
}

// handleChangeStatusMode handles keys in the status picker.
func (m *Model) handleChangeStatusMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	statuses := domain.AllStatuses()
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.statusCursor > 0 {
			m.statusCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.statusCursor < len(statuses)-1 {
			m.statusCursor++
		}
		return m, nil

	case msg.Type == tea.KeyEnter:
		task := m.SelectedTask()
		if task == nil {
			m.mode = ModeNormal
			return m, nil
		}
		return m, m.setStatus(task.ID, statuses[m.statusCursor])
	}

	return m, nil
}

// handleNotificationsMode handles keys in the notification overlay.
func (m *Model) handleNotificationsMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Notifications), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.inbox.Move(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.inbox.Move(1)
		return m, nil

	case key.Matches(msg, m.keys.MarkRead), msg.Type == tea.KeyEnter:
		m.inbox.MarkRead()
		return m, nil

	case key.Matches(msg, m.keys.MarkAllRead):
		m.inbox.MarkAllRead()
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.inbox.Dismiss()
		return m, nil
	}

	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

// handleDetailMode handles keys in detail view mode.
func (m *Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Done):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		next := domain.StatusCompleted
		if task.IsCompleted() {
			next = domain.StatusTodo
		}
		return m, m.setStatus(task.ID, next)
	}

	return m, nil
}

// createTask returns a command that creates a task with the default due date.
func (m *Model) createTask(title, desc string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.NewTaskUseCase().Execute(context.Background(), usecase.NewTaskInput{
			Title:       title,
			Description: desc,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{TaskID: out.Task.ID}
	}
}

// setStatus returns a command that moves a task to status.
func (m *Model) setStatus(id string, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SetStatusUseCase().Execute(context.Background(), usecase.SetStatusInput{
			TaskID: id,
			Status: status,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskStatusUpdated{TaskID: out.Task.ID, Status: out.Task.Status}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: id}
	}
}

// clearTasks returns a command that deletes every task.
func (m *Model) clearTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ClearTasksUseCase().Execute(context.Background(), usecase.ClearTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksCleared{Removed: out.Removed}
	}
}

// setView returns a command that switches and remembers the task view.
func (m *Model) setView(v domain.View) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{
			View:     string(v),
			Remember: true,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgViewChanged{View: out.View}
	}
}

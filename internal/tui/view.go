package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase/shared"
)

// dashboardListLimit caps the rows shown per dashboard section.
const dashboardListLimit = 5

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeDetail:
		content = m.viewDetail()
	case ModeNormal, ModeFilter, ModeConfirm, ModeInputTitle, ModeInputDesc, ModeChangeStatus, ModeNotifications:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the current page with any dialog below it.
func (m *Model) viewMain() string {
	var b strings.Builder

	// Header
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	// Error message (if any)
	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	switch m.page {
	case PageDashboard:
		b.WriteString(m.viewDashboard())
	case PageTasks:
		b.WriteString(m.viewTasks())
	}

	// Dialogs/overlays
	switch m.mode {
	case ModeNormal, ModeFilter, ModeHelp, ModeDetail:
		// No overlay for these modes
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeInputTitle:
		b.WriteString("\n")
		b.WriteString(m.viewTitleInput())
	case ModeInputDesc:
		b.WriteString("\n")
		b.WriteString(m.viewDescInput())
	case ModeChangeStatus:
		b.WriteString("\n")
		b.WriteString(m.viewStatusPicker())
	case ModeNotifications:
		b.WriteString("\n")
		b.WriteString(m.viewNotifications())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(NewStatusLine(m.width-4, &m.styles).Render(m.GetStatusInfo()))

	return b.String()
}

// viewHeader renders the page tabs, the greeting and the unread badge.
func (m *Model) viewHeader() string {
	tabs := make([]string, 0, 2)
	for _, p := range []Page{PageDashboard, PageTasks} {
		label := "Dashboard"
		if p == PageTasks {
			label = "Tasks"
		}
		if p == m.page {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	left := m.styles.HeaderText.Render("tick") + "  " + strings.Join(tabs, " ")

	right := m.styles.StatLabel.Render(m.profile.Initials())
	if unread := m.inbox.Unread(); unread > 0 {
		right = m.styles.Badge.Render(fmt.Sprintf("● %d", unread)) + "  " + right
	}

	headerWidth := m.width - 4
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return left + strings.Repeat(" ", spacing) + right
}

// viewDashboard renders the summary page.
func (m *Model) viewDashboard() string {
	s := m.summary
	var b strings.Builder

	name := m.profile.Name
	if name == "" {
		name = domain.DefaultProfile().Name
	}
	b.WriteString(m.styles.Header.Render("Welcome back, " + name))
	b.WriteString("\n")

	cards := []string{
		m.statCard("Total", fmt.Sprint(s.Counts.Total)),
		m.statCard("To Do", fmt.Sprint(s.Counts.Todo)),
		m.statCard("In Progress", fmt.Sprint(s.Counts.InProgress)),
		m.statCard("Completed", fmt.Sprint(s.Counts.Completed)),
		m.statCard("Completion", fmt.Sprintf("%d%%", s.CompletionRate)),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.viewTaskSection("Overdue", s.Overdue, s.Now),
		m.viewTaskSection("Due today", s.DueToday, s.Now),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.viewTaskSection("High priority", s.HighPriorityPending, s.Now),
		m.viewRecentSection(s.RecentlyCompleted, s.Now),
	)
	colWidth := max((m.width-8)/2, 30)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(colWidth).Render(left),
		lipgloss.NewStyle().Width(colWidth).Render(right),
	))

	if !m.settings.Notifications.DueDateReminders {
		b.WriteString("\n" + m.styles.Footer.Render("Due date reminders are turned off"))
	}
	return b.String()
}

func (m *Model) statCard(label, value string) string {
	return m.styles.Card.Render(m.styles.StatValue.Render(value) + "\n" + m.styles.StatLabel.Render(label))
}

func (m *Model) viewTaskSection(title string, tasks []*domain.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString(m.styles.SectionTitle.Render(fmt.Sprintf("%s (%d)", title, len(tasks))))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(m.styles.Footer.Render("  nothing here") + "\n")
	}
	for i, t := range tasks {
		if i == dashboardListLimit {
			b.WriteString(m.styles.Footer.Render(fmt.Sprintf("  and %d more", len(tasks)-i)) + "\n")
			break
		}
		fmt.Fprintf(&b, "  %s %s  %s\n",
			m.styles.PriorityStyle(t.Priority).Render("■"),
			m.styles.TaskTitle.Render(runewidth.Truncate(t.Title, 40, "...")),
			m.styles.TaskDue.Render(humanize.RelTime(t.DueDate, now, "ago", "from now")))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewRecentSection(tasks []*domain.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString(m.styles.SectionTitle.Render(fmt.Sprintf("Recently completed (%d)", len(tasks))))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(m.styles.Footer.Render("  nothing here") + "\n")
	}
	for _, t := range tasks {
		fmt.Fprintf(&b, "  %s %s  %s\n",
			m.styles.StatusCompleted.Render(StatusIcon(domain.StatusCompleted)),
			m.styles.TaskTitle.Render(runewidth.Truncate(t.Title, 40, "...")),
			m.styles.TaskDue.Render(humanize.RelTime(*t.CompletedAt, now, "ago", "from now")))
	}
	return b.String()
}

// viewTasks renders the task page in the remembered view.
func (m *Model) viewTasks() string {
	var b strings.Builder

	visible := len(m.visibleTasks())
	b.WriteString(m.styles.Footer.Render(fmt.Sprintf("%s view · showing %d of %d tasks", m.view, visible, len(m.tasks))))
	b.WriteString("\n\n")

	// Filter input (if in filter mode)
	if m.mode == ModeFilter {
		b.WriteString(m.styles.InputPrompt.Render("Filter: "))
		b.WriteString(m.filterInput.View())
		b.WriteString("\n\n")
	} else if m.filterInput.Value() != "" {
		b.WriteString(m.styles.Footer.Render("Filtered: "+m.filterInput.Value()) + "\n\n")
	}

	if len(m.tasks) == 0 {
		return b.String() + m.viewEmptyState()
	}
	if m.view == domain.ViewBoard {
		b.WriteString(m.viewBoard())
	} else {
		b.WriteString(m.taskList.View())
	}
	return b.String()
}

// viewEmptyState renders the hint shown when there are no tasks.
func (m *Model) viewEmptyState() string {
	return m.styles.Footer.Render("No tasks yet. Press ") +
		m.styles.FooterKey.Render("n") +
		m.styles.Footer.Render(" to create one.") + "\n"
}

// viewBoard renders one column per status.
func (m *Model) viewBoard() string {
	selected := m.SelectedTask()
	statuses := domain.AllStatuses()
	colWidth := max((m.width-8)/len(statuses), 24)
	now := m.now()

	columns := make([]string, 0, len(statuses))
	for _, s := range statuses {
		var b strings.Builder
		var tasks []*domain.Task
		for _, t := range m.visibleTasks() {
			if t.Status == s {
				tasks = append(tasks, t)
			}
		}
		b.WriteString(m.styles.StatusStyle(s).Bold(true).Render(fmt.Sprintf("%s %s (%d)", StatusIcon(s), s.Display(), len(tasks))))
		b.WriteString("\n\n")
		for _, t := range tasks {
			indicator := " "
			titleStyle := m.styles.TaskTitle
			if selected != nil && t.ID == selected.ID {
				indicator = m.styles.SelectionIndicator.Render(">")
				titleStyle = m.styles.TaskTitleSelected
			}
			title := runewidth.Truncate(t.Title, colWidth-6, "...")
			fmt.Fprintf(&b, "%s %s %s\n", indicator, m.styles.PriorityStyle(t.Priority).Render("■"), titleStyle.Render(title))
			if !m.settings.Appearance.CompactMode {
				dueStyle := m.styles.TaskDue
				if t.IsPastDue(now) {
					dueStyle = m.styles.TaskPastDue
				}
				fmt.Fprintf(&b, "    %s\n", dueStyle.Render(dueText(t, now)))
			}
		}
		columns = append(columns, lipgloss.NewStyle().Width(colWidth).PaddingRight(2).Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	var action, target string

	switch m.confirmAction {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		action = "Delete"
		target = "task " + shared.ShortID(m.confirmTaskID)
	case ConfirmClear:
		action = "Delete"
		target = fmt.Sprintf("all %d tasks", len(m.tasks))
	}

	color := m.styles.Palette.Error
	title := m.styles.DialogTitle.Foreground(color).Render(fmt.Sprintf("%s %s?", action, target))
	prompt := m.styles.DialogPrompt.Render("This action cannot be undone.")

	// Buttons
	yesBtn := m.styles.HelpKey.Render("[ y ] Confirm")
	noBtn := m.styles.Footer.Render("[ n ] Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn)

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", prompt, "", buttons)
	return m.styles.Dialog.BorderForeground(color).Render(content)
}

// viewTitleInput renders the title input dialog.
func (m *Model) viewTitleInput() string {
	title := m.styles.DialogTitle.Render("◆ New Task")
	stepInfo := m.styles.Footer.Render("Step 1 of 2")
	label := m.styles.InputPrompt.Render("Title")
	input := m.titleInput.View()
	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" next  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")

	content := lipgloss.JoinVertical(lipgloss.Left, title, stepInfo, "", label, input, "", hint)
	return m.styles.Dialog.Render(content)
}

// viewDescInput renders the description input dialog.
func (m *Model) viewDescInput() string {
	title := m.styles.DialogTitle.Render("◆ New Task")
	stepInfo := m.styles.Footer.Render("Step 2 of 2")
	titleLabel := m.styles.Footer.Render("Title: ") + m.styles.TaskTitle.Render(m.titleInput.Value())
	label := m.styles.InputPrompt.Render("Description (optional)")
	input := m.descInput.View()
	due := m.styles.Footer.Render("Due today at " + m.settings.DefaultDueTime)
	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" create  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" back")

	content := lipgloss.JoinVertical(lipgloss.Left, title, stepInfo, "", titleLabel, "", label, input, due, "", hint)
	return m.styles.Dialog.Render(content)
}

// viewStatusPicker renders the status picker dialog.
func (m *Model) viewStatusPicker() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Change status"))
	b.WriteString("\n\n")
	for i, s := range domain.AllStatuses() {
		indicator := "  "
		if i == m.statusCursor {
			indicator = m.styles.SelectionIndicator.Render("> ")
		}
		b.WriteString(indicator + m.styles.StatusStyle(s).Render(StatusIcon(s)+" "+s.Display()) + "\n")
	}
	return m.styles.Dialog.Render(strings.TrimRight(b.String(), "\n"))
}

// viewNotifications renders the notification overlay.
func (m *Model) viewNotifications() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(fmt.Sprintf("Notifications (%d unread)", m.inbox.Unread())))
	b.WriteString("\n\n")

	visible := m.inbox.Visible()
	switch {
	case !m.settings.Notifications.DueDateReminders:
		b.WriteString(m.styles.Footer.Render("Due date reminders are turned off"))
	case len(visible) == 0:
		b.WriteString(m.styles.Footer.Render("No notifications"))
	}
	for i, n := range visible {
		indicator := "  "
		if i == m.inbox.cursor {
			indicator = m.styles.SelectionIndicator.Render("> ")
		}
		style := m.styles.NotificationUnread
		if m.inbox.IsRead(n) {
			style = m.styles.NotificationRead
		}
		b.WriteString(indicator + style.Render(CategoryIcon(n.Category)+" "+n.Message()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.FooterKey.Render("r") + m.styles.Footer.Render(" read  ") +
		m.styles.FooterKey.Render("R") + m.styles.Footer.Render(" read all  ") +
		m.styles.FooterKey.Render("d") + m.styles.Footer.Render(" dismiss  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" close"))
	return m.styles.Dialog.Render(b.String())
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")

	groups := m.keys.FullHelp()
	names := []string{"NAVIGATION", "TASKS", "NOTIFICATIONS", "GENERAL"}

	var col1, col2 strings.Builder
	for i, binds := range groups {
		b := &col1
		if i >= 2 {
			b = &col2
		}
		b.WriteString(m.styles.SectionTitle.Render(names[i]))
		b.WriteString("\n")
		for _, bind := range binds {
			h := bind.Help()
			fmt.Fprintf(b, "%s %s\n", m.styles.HelpKey.Width(8).Render(h.Key), m.styles.HelpDesc.Render(h.Desc))
		}
		b.WriteString("\n")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		col1.String(),
		"    ", // Gutter
		col2.String(),
	)

	return m.styles.Dialog.
		BorderForeground(m.styles.Palette.Primary).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content))
}

// viewDetail renders the task detail view.
func (m *Model) viewDetail() string {
	task := m.SelectedTask()
	if task == nil {
		return "No task selected"
	}
	now := m.now()

	var lines []string
	lines = append(lines, m.styles.DetailTitle.Render("Task "+shared.ShortID(task.ID)))
	lines = append(lines, m.styles.TaskTitleSelected.Render(task.Title))
	lines = append(lines, "")

	row := func(label, value string) {
		lines = append(lines, m.styles.DetailLabel.Render(label)+m.styles.DetailValue.Render(value))
	}
	lines = append(lines, m.styles.DetailLabel.Render("Status")+m.styles.StatusStyle(task.Status).Render(task.Status.Display()))
	lines = append(lines, m.styles.DetailLabel.Render("Priority")+m.styles.PriorityStyle(task.Priority).Render(task.Priority.Display()))
	row("Due", task.DueDate.Format("2006-01-02 15:04")+" ("+dueText(task, now)+")")
	if len(task.Tags) > 0 {
		row("Tags", strings.Join(task.Tags, ", "))
	}
	row("Created", task.CreatedAt.Format("2006-01-02 15:04"))
	if task.CompletedAt != nil {
		row("Completed", task.CompletedAt.Format("2006-01-02 15:04"))
	}
	if category, ok := domain.ClassifyNotification(task, now); ok {
		row("Reminder", category.Display())
	}
	if task.Description != "" {
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Width(max(m.width-12, 40)).Render(task.Description))
	}

	lines = append(lines, "")
	lines = append(lines, m.styles.FooterKey.Render("x")+m.styles.Footer.Render(" toggle done  ")+
		m.styles.FooterKey.Render("esc")+m.styles.Footer.Render(" back"))

	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

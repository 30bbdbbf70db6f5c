package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/runoshun/ticktick/internal/usecase/shared"
	"github.com/spf13/cobra"
)

// boardWidth is the total width of the board view.
const boardWidth = 100

// newNewCommand creates the new command for creating tasks.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Status      string
		Priority    string
		Due         string
		From        string
		Tags        []string
		DryRun      bool
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new task",
		Long: `Create a new task.

Status defaults to 'todo', priority to 'medium' and the due date to today
at the default due time (settings key defaultDueTime, 17:00 unless changed).

Due dates accept: YYYY-MM-DD, "YYYY-MM-DD HH:MM", RFC 3339, today, tomorrow, +Nd.

Examples:
  # Create a task due today
  tick new --title "Write report"

  # Create a high priority task due tomorrow with tags
  tick new --title "Ship release" --priority high --due tomorrow --tag work --tag release

  # Create tasks from a YAML file
  tick new --from tasks.yaml

  # Preview tasks from a file without creating
  tick new --from tasks.yaml --dry-run

File format for --from (a list, or a mapping with a "tasks" key):
  - title: Task 1
    priority: high
    due: 2024-07-01
    tags: [work]
  - title: Task 2
    description: Details here`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Check if --from is specified
			if opts.From != "" {
				return createTasksFromFile(cmd, c, opts.From, opts.DryRun)
			}

			// Require --title when not using --from
			if opts.Title == "" {
				return fmt.Errorf("required flag(s) \"title\" not set")
			}

			uc := c.NewTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NewTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Status:      opts.Status,
				Priority:    opts.Priority,
				Due:         opts.Due,
				Tags:        opts.Tags,
			})
			if err != nil {
				return err
			}

			printTaskLine(cmd.OutOrStdout(), "Created", out.Task)
			return nil
		},
	}

	// Flags (--title is conditionally required based on --from)
	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required unless --from is used)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Initial status (todo, in-progress, completed)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority (low, medium, high)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Tags (can specify multiple)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create tasks from a YAML file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview tasks without creating (requires --from)")

	return cmd
}

// createTasksFromFile creates tasks from a YAML file.
func createTasksFromFile(cmd *cobra.Command, c *app.Container, filePath string, dryRun bool) error {
	// Read file content
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	uc := c.CreateTasksFromFileUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.CreateTasksFromFileInput{
		Content: string(content),
		DryRun:  dryRun,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if dryRun {
		_, _ = fmt.Fprintln(w, "Dry run - tasks that would be created:")
		_, _ = fmt.Fprintln(w, "")
		for i, task := range out.Tasks {
			_, _ = fmt.Fprintf(w, "Task %d: %s [%s, %s, due %s]\n",
				i+1, task.Title, task.Status, task.Priority, task.DueDate.Format(dueLayout))
		}
		return nil
	}

	for _, task := range out.Tasks {
		printTaskLine(w, "Created", task)
	}
	_, _ = fmt.Fprintf(w, "\nCreated %d task(s)\n", len(out.Tasks))
	return nil
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Search   string
		Tag      string
		Status   string
		View     string
		JSON     bool
		Remember bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display tasks in insertion order.

The layout is the remembered default view (board or list) unless --view is given.
Use --remember to store --view as the new default.

Examples:
  # List every task
  tick list

  # Show only pending work tagged "work"
  tick list --status todo --tag work

  # Search title, description and tags (case-insensitive)
  tick list --search report

  # Switch to the board layout and remember it
  tick list --view board --remember`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				Search:   opts.Search,
				Tag:      opts.Tag,
				Status:   opts.Status,
				View:     opts.View,
				Remember: opts.Remember,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.JSON {
				return writeJSON(w, out.Tasks)
			}
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(w, "No tasks found")
				return nil
			}
			if out.View == domain.ViewBoard {
				printTaskBoard(w, out, boardWidth)
				return nil
			}
			printTaskList(w, out.Tasks, c.Clock.Now())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "Search title, description and tags")
	cmd.Flags().StringVar(&opts.Tag, "tag", "", "Filter by tag")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status (todo, in-progress, completed, all)")
	cmd.Flags().StringVar(&opts.View, "view", "", "Layout (board, list)")
	cmd.Flags().BoolVar(&opts.Remember, "remember", false, "Remember --view as the default view")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		JSON bool
	}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display task details",
		Long: `Display detailed information about a task.

The ID may be any unique prefix of the task ID.

Examples:
  tick show 3f2a
  tick show 3f2a --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}

			if opts.JSON {
				type jsonTask struct {
					*domain.Task
					Category domain.NotificationCategory `json:"category,omitempty"`
					PastDue  bool                        `json:"pastDue"`
					DueSoon  bool                        `json:"dueSoon"`
				}
				return writeJSON(cmd.OutOrStdout(), jsonTask{
					Task:     out.Task,
					Category: out.Category,
					PastDue:  out.PastDue,
					DueSoon:  out.DueSoon,
				})
			}

			printTaskDetails(cmd.OutOrStdout(), out, c.Clock.Now())
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Status      string
		Priority    string
		Due         string
		AddTags     []string
		RemoveTags  []string
		Editor      bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit an existing task. Only the given flags are changed.

Examples:
  tick edit 3f2a --title "New title"
  tick edit 3f2a --priority high --due +2d
  tick edit 3f2a --add-tag urgent --rm-tag someday
  tick edit 3f2a --editor   # edit the description in $EDITOR`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.EditTaskInput{
				TaskID:     args[0],
				AddTags:    opts.AddTags,
				RemoveTags: opts.RemoveTags,
			}
			if cmd.Flags().Changed("title") {
				input.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				input.Description = &opts.Description
			}
			if opts.Editor {
				shown, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: args[0]})
				if err != nil {
					return err
				}
				edited, err := editText(shown.Task.Description)
				if err != nil {
					return err
				}
				input.TaskID = shown.Task.ID
				input.Description = &edited
			}
			if cmd.Flags().Changed("status") {
				input.Status = &opts.Status
			}
			if cmd.Flags().Changed("priority") {
				input.Priority = &opts.Priority
			}
			if cmd.Flags().Changed("due") {
				input.Due = &opts.Due
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printTaskLine(cmd.OutOrStdout(), "Updated", out.Task)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date")
	cmd.Flags().StringArrayVar(&opts.AddTags, "add-tag", nil, "Tags to add (can specify multiple)")
	cmd.Flags().StringArrayVar(&opts.RemoveTags, "rm-tag", nil, "Tags to remove (can specify multiple)")
	cmd.Flags().BoolVarP(&opts.Editor, "editor", "e", false, "Edit the description in $EDITOR")
	cmd.MarkFlagsMutuallyExclusive("body", "editor")

	return cmd
}

// setStatus runs the SetStatus use case and prints the transition.
func setStatus(cmd *cobra.Command, c *app.Container, id string, status domain.Status) error {
	uc := c.SetStatusUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.SetStatusInput{TaskID: id, Status: status})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s: %s -> %s\n", shared.ShortID(out.Task.ID), out.Previous, out.Task.Status)
	return nil
}

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change the status of a task",
		Long: `Move a task to todo, in-progress or completed.

Completing a task records the completion time; leaving completed clears it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}
			return setStatus(cmd, c, args[0], status)
		},
	}
}

// newDoneCommand creates the done command.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(cmd, c, args[0], domain.StatusCompleted)
		},
	}
}

// newReopenCommand creates the reopen command.
func newReopenCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <id>",
		Short: "Move a task back to todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(cmd, c, args[0], domain.StatusTodo)
		},
	}
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long:  `Delete a task. Deleting a task that does not exist is not an error.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			if !out.Deleted {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No task matches %q\n", args[0])
				return nil
			}
			printTaskLine(cmd.OutOrStdout(), "Deleted", out.Task)
			return nil
		},
	}
}

// newCopyCommand creates the cp command.
func newCopyCommand(c *app.Container) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "cp <id>",
		Short: "Copy a task",
		Long: `Copy a task into a new todo task.

The copy keeps the description, priority, due date and tags.
The title gets a " (copy)" suffix unless --title is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.CopyTaskInput{SourceID: args[0]}
			if cmd.Flags().Changed("title") {
				input.Title = &title
			}
			out, err := c.CopyTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			printTaskLine(cmd.OutOrStdout(), "Created", out.Task)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title of the copy")

	return cmd
}

// newClearCommand creates the clear command.
func newClearCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to delete every task without --yes")
			}
			uc := c.ClearTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ClearTasksInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d task(s)\n", out.Removed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deleting every task")

	return cmd
}

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
		Output string
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every task",
		Long: `Export every task as JSON or YAML.

The YAML output can be imported again with 'tick new --from'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ExportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ExportTasksInput{Format: opts.Format})
			if err != nil {
				return err
			}
			if opts.Output == "" || opts.Output == "-" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
				return nil
			}
			if err := os.WriteFile(opts.Output, []byte(out.Content), 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d task(s) to %s\n", out.Count, opts.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", usecase.FormatJSON, "Output format (json, yaml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

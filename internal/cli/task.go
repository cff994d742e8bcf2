package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/kerja-workspace/internal/app"
	"github.com/yukikurage/kerja-workspace/internal/models"
	"github.com/yukikurage/kerja-workspace/internal/services"
)

func newTaskCmd(r *runner) *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage board tasks",
	}

	taskCmd.AddCommand(newTaskListCmd(r))
	taskCmd.AddCommand(newTaskAddCmd(r))
	taskCmd.AddCommand(newTaskMoveCmd(r))
	taskCmd.AddCommand(newTaskEditCmd(r))
	taskCmd.AddCommand(newTaskRmCmd(r))
	taskCmd.AddCommand(newTaskGenerateCmd(r))
	return taskCmd
}

func newTaskListCmd(r *runner) *cobra.Command {
	var input services.ListTasksInput
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withActor(func(a *app.App, _ models.User) error {
				input.Status = models.TaskStatus(status)
				printTasks(cmd.OutOrStdout(), a.Workspace.Columns(), a.TaskService.ListTasks(input))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&input.Query, "query", "q", "", "Filter by title")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status column id")
	cmd.Flags().StringVar(&input.AssigneeID, "assignee", "", "Filter by assignee user id")
	return cmd
}

func newTaskAddCmd(r *runner) *cobra.Command {
	var task models.Task
	var status, priority string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withActor(func(a *app.App, _ models.User) error {
				task.Title = args[0]
				task.Status = models.TaskStatus(status)
				task.Priority = models.TaskPriority(priority)
				task.Subtasks = []models.Subtask{}
				created := a.Workspace.CreateTask(task)
				fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", created.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&task.Description, "description", "d", "", "Description")
	cmd.Flags().StringVar(&status, "status", "", "Column id (defaults to the first column)")
	cmd.Flags().StringVar(&priority, "priority", string(models.PriorityMedium), "low, medium or high")
	cmd.Flags().StringVar(&task.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&task.AssigneeID, "assignee", "", "Assignee user id")
	return cmd
}

func newTaskMoveCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move a task to another column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withActor(func(a *app.App, _ models.User) error {
				task, ok := a.Workspace.ChangeTaskStatus(args[0], models.TaskStatus(args[1]))
				if !ok {
					return fmt.Errorf("task %s not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s is now %s\n", task.ID, task.Status)
				return nil
			})
		},
	}
}

func newTaskEditCmd(r *runner) *cobra.Command {
	var title, description, priority, due, assignee string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change task fields; only the flags given are updated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var patch models.TaskPatch
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("priority") {
				p := models.TaskPriority(priority)
				patch.Priority = &p
			}
			if flags.Changed("due") {
				patch.DueDate = &due
			}
			if flags.Changed("assignee") {
				patch.AssigneeID = &assignee
			}

			return r.withActor(func(a *app.App, _ models.User) error {
				task, ok := a.Workspace.UpdateTask(args[0], patch)
				if !ok {
					return fmt.Errorf("task %s not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", task.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	cmd.Flags().StringVar(&priority, "priority", "", "low, medium or high")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee user id")
	return cmd
}

func newTaskRmCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withActor(func(a *app.App, _ models.User) error {
				if removed := a.Workspace.DeleteTask(args[0]); removed == nil {
					return fmt.Errorf("task %s not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
				return nil
			})
		},
	}
}

func newTaskGenerateCmd(r *runner) *cobra.Command {
	var input services.GenerateTasksInput

	cmd := &cobra.Command{
		Use:   "generate <text>",
		Short: "Draft tasks from free text with OpenAI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withActor(func(a *app.App, _ models.User) error {
				input.Text = args[0]
				tasks, err := a.TaskService.GenerateTasks(cmd.Context(), input)
				if err != nil {
					return err
				}
				printTasks(cmd.OutOrStdout(), a.Workspace.Columns(), tasks)
				if !input.Create {
					fmt.Fprintln(cmd.OutOrStdout(), "Drafts only; pass --create to add them to the board.")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&input.Create, "create", false, "Add the drafts to the board")
	cmd.Flags().StringVar(&input.AssigneeID, "assignee", "", "Assign every draft to this user id")
	return cmd
}

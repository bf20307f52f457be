package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"

	"dayflow/internal/cli"
	"dayflow/internal/errors"
	"dayflow/internal/gateway"
	"dayflow/internal/logger"
	"dayflow/internal/prefs"
	"dayflow/internal/service"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Resource server URL." env:"DAYFLOW_SERVER" default:"http://localhost:3004"`
	Config  string `help:"Config directory." env:"DAYFLOW_CONFIG" type:"path" default:"~/.config/dayflow"`
	Debug   bool   `help:"Enable debug logging."`

	Tui   cli.TuiCmd `cmd:"" help:"Launch the interactive board." default:"1"`
	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits with their weekly progress."`
		Edit   cli.HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit and all of its check-ins."`
		Check  cli.HabitCheckCmd  `cmd:"" help:"Toggle a habit's check-in for a day."`
	} `cmd:"" help:"Manage habits."`
	Task struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   cli.TaskListCmd   `cmd:"" help:"List tasks."`
		Done   cli.TaskDoneCmd   `cmd:"" help:"Toggle a task between TODO and DONE."`
		Edit   cli.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Move a task to the trash."`
	} `cmd:"" help:"Manage tasks."`
	Trash struct {
		List    cli.TrashListCmd    `cmd:"" help:"List trashed tasks." default:"1"`
		Restore cli.TrashRestoreCmd `cmd:"" help:"Restore a trashed task."`
		Purge   cli.TrashPurgeCmd   `cmd:"" help:"Permanently delete a trashed task."`
	} `cmd:"" help:"Manage the task trash."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show the month calendar of tasks and check-ins."`
	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Change settings."`
	} `cmd:"" help:"View preferences."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("dayflow"),
		kong.Description("Habit and task tracker with a weekly check-in board"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := os.MkdirAll(CLI.Config, 0o700); err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: CLI.Config}); err != nil {
		errors.Fatal(err)
	}

	client := gateway.New(CLI.Server)
	appCtx := &cli.Context{
		Habits: service.NewHabits(client),
		Tasks:  service.NewTasks(client),
		Prefs:  prefs.NewStore(CLI.Config),
		Now:    time.Now,
	}

	errors.Fatal(ctx.Run(appCtx))
}

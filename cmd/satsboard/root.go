package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/satsboard/satsboard/internal/board"
	"github.com/satsboard/satsboard/internal/config"
	"github.com/satsboard/satsboard/internal/github"
	"github.com/satsboard/satsboard/internal/report"
	"github.com/satsboard/satsboard/internal/satsboard"
)

var (
	configPath  string
	serviceURL  string
	accessToken string
	userID      string
	walletID    string
	verbose     bool

	boardName         string
	boardDescription  string
	publicAssigning   bool
	publicTasks       bool
	publicDeleteTasks bool

	boardID      string
	taskText     string
	taskAssignee string
	taskStage    string
	taskReward   string
	taskNotes    string

	listLimit  int
	listOffset int

	outputDir     string
	outputFormats string

	repoSlug    string
	githubToken string
)

var rootCmd = &cobra.Command{
	Use:   "satsboard",
	Short: "Manage scrum boards with satoshi task rewards",
	Long:  `satsboard talks to a remote scrum-board service: boards, tasks, sprint reports and GitHub-issue import.`,
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Board operations",
}

var boardCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a board",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		created, err := app.Client.CreateBoard(context.Background(), board.CreateBoardRequest{
			Name:              boardName,
			Description:       boardDescription,
			PublicAssigning:   publicAssigning,
			PublicTasks:       publicTasks,
			PublicDeleteTasks: publicDeleteTasks,
		})
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var boardGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}
		b, err := app.Client.GetBoard(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(b)
	},
}

var boardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List boards",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}
		boards, err := app.Client.ListBoards(context.Background(), listLimit, listOffset)
		if err != nil {
			return err
		}
		return printJSON(boards)
	},
}

var boardUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		update := board.BoardUpdate{}
		if cmd.Flags().Changed("name") {
			update.Name = &boardName
		}
		if cmd.Flags().Changed("description") {
			update.Description = &boardDescription
		}
		if cmd.Flags().Changed("public-assigning") {
			update.PublicAssigning = &publicAssigning
		}
		if cmd.Flags().Changed("public-tasks") {
			update.PublicTasks = &publicTasks
		}
		if cmd.Flags().Changed("public-delete-tasks") {
			update.PublicDeleteTasks = &publicDeleteTasks
		}

		updated, err := app.Client.UpdateBoard(context.Background(), args[0], update)
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var boardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}
		if err := app.Client.DeleteBoard(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Board %s deleted\n", args[0])
		return nil
	},
}

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Task operations",
}

var taskCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a task (starts in todo)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		reward, err := parseReward(taskReward)
		if err != nil {
			return err
		}

		created, err := app.Client.CreateTask(context.Background(), board.CreateTaskRequest{
			ScrumID:     boardID,
			Description: taskText,
			Assignee:    taskAssignee,
			Reward:      reward,
			Notes:       taskNotes,
		})
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var taskGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}
		t, err := app.Client.GetTask(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(t)
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tasks of a board",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}
		page, err := app.Client.ListTasks(context.Background(), boardID, listLimit, listOffset)
		if err != nil {
			return err
		}
		fmt.Printf("%d tasks total\n", page.Total)
		return printJSON(page.Tasks)
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		update := board.TaskUpdate{}
		if cmd.Flags().Changed("task") {
			update.Description = &taskText
		}
		if cmd.Flags().Changed("assignee") {
			update.Assignee = &taskAssignee
		}
		if cmd.Flags().Changed("stage") {
			update.Stage = &taskStage
		}
		if cmd.Flags().Changed("notes") {
			update.Notes = &taskNotes
		}
		if cmd.Flags().Changed("reward") {
			reward, err := parseReward(taskReward)
			if err != nil {
				return err
			}
			update.Reward = reward
		}

		updated, err := app.Client.UpdateTask(context.Background(), args[0], update)
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}
		if err := app.Client.DeleteTask(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Task %s deleted\n", args[0])
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate a board's tasks into a sprint report",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		bar := newSpinner("Fetching board and tasks")
		rep, err := app.SprintReport(context.Background(), boardID)
		finishBar(bar)
		if err != nil {
			return err
		}

		fmt.Println()
		report.RenderTable(os.Stdout, rep)

		formats := parseCommaList(outputFormats)
		if len(formats) > 0 {
			if err := app.Export(rep, outputDir, formats); err != nil {
				return err
			}
			fmt.Printf("\nReports saved to %s/\n", outputDir)
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the service is reachable with the configured credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}
		if err := app.Client.HealthCheck(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Service %s is reachable\n", app.Client.BaseURL())
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import open GitHub issues onto a board",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		owner, repo, err := splitRepo(repoSlug)
		if err != nil {
			return err
		}

		importer := github.NewImporter(app.Client, githubToken, app.Logger)

		bar := newSpinner("Fetching issues")
		issues, err := importer.FetchOpenIssues(context.Background(), owner, repo)
		finishBar(bar)
		if err != nil {
			return err
		}

		if len(issues) == 0 {
			fmt.Println("No open issues to import")
			return nil
		}

		fmt.Printf("Importing %d issues onto board %s\n", len(issues), boardID)
		importBar := progressbar.NewOptions(len(issues),
			progressbar.OptionSetDescription("Importing"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
		)

		results := make([]github.ImportResult, 0, len(issues))
		for _, iss := range issues {
			results = append(results, importer.Import(context.Background(), boardID, []github.Issue{iss})...)
			_ = importBar.Add(1)
		}
		finishBar(importBar)

		imported := 0
		fmt.Println()
		for _, res := range results {
			if res.Success() {
				imported++
				fmt.Printf("  ok   #%d %s\n", res.Issue.Number, res.Issue.Title)
			} else {
				fmt.Printf("  fail #%d %s: %v\n", res.Issue.Number, res.Issue.Title, res.Err)
			}
		}
		fmt.Printf("\nImported %d/%d issues\n", imported, len(results))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $HOME/.satsboard.yaml)")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "url", "", "Board service URL")
	rootCmd.PersistentFlags().StringVar(&accessToken, "token", "", "Access token (bearer)")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "User identifier (usr query parameter)")
	rootCmd.PersistentFlags().StringVar(&walletID, "wallet", "", "Wallet id attached to new boards")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(boardCmd, taskCmd, reportCmd, importCmd, statusCmd)
	boardCmd.AddCommand(boardCreateCmd, boardGetCmd, boardListCmd, boardUpdateCmd, boardDeleteCmd)
	taskCmd.AddCommand(taskCreateCmd, taskGetCmd, taskListCmd, taskUpdateCmd, taskDeleteCmd)

	for _, cmd := range []*cobra.Command{boardCreateCmd, boardUpdateCmd} {
		cmd.Flags().StringVar(&boardName, "name", "", "Board name")
		cmd.Flags().StringVar(&boardDescription, "description", "", "Board description")
		cmd.Flags().BoolVar(&publicAssigning, "public-assigning", false, "Allow public task assigning")
		cmd.Flags().BoolVar(&publicTasks, "public-tasks", false, "Allow public task creation")
		cmd.Flags().BoolVar(&publicDeleteTasks, "public-delete-tasks", false, "Allow public task deletion")
	}
	boardListCmd.Flags().IntVar(&listLimit, "limit", 0, "Page size")
	boardListCmd.Flags().IntVar(&listOffset, "offset", 0, "Page offset")

	for _, cmd := range []*cobra.Command{taskCreateCmd, taskUpdateCmd} {
		cmd.Flags().StringVar(&taskText, "task", "", "Task description")
		cmd.Flags().StringVar(&taskAssignee, "assignee", "", "Assignee")
		cmd.Flags().StringVar(&taskReward, "reward", "", "Reward in sats, 'null', or empty to omit")
		cmd.Flags().StringVar(&taskNotes, "notes", "", "Notes")
	}
	taskCreateCmd.Flags().StringVar(&boardID, "board", "", "Board id")
	taskUpdateCmd.Flags().StringVar(&taskStage, "stage", "", "Stage: todo, doing or done")
	taskListCmd.Flags().StringVar(&boardID, "board", "", "Board id")
	taskListCmd.Flags().IntVar(&listLimit, "limit", 0, "Page size")
	taskListCmd.Flags().IntVar(&listOffset, "offset", 0, "Page offset")

	reportCmd.Flags().StringVar(&boardID, "board", "", "Board id")
	reportCmd.Flags().StringVarP(&outputDir, "output", "o", "reports", "Output directory")
	reportCmd.Flags().StringVar(&outputFormats, "format", "", "Export formats: json,csv,xlsx (empty = table only)")

	importCmd.Flags().StringVar(&boardID, "board", "", "Board id")
	importCmd.Flags().StringVar(&repoSlug, "repo", "", "GitHub repository (owner/name)")
	importCmd.Flags().StringVar(&githubToken, "github-token", "", "GitHub token (optional for public repos)")
}

// loadApp builds the application from the config file, environment, and flag
// overrides, in that order.
func loadApp() (*satsboard.Application, error) {
	logger := newLogger()

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg := config.Load(path, logger)

	if serviceURL != "" {
		cfg.ServiceURL = serviceURL
	}
	if accessToken != "" {
		cfg.AccessToken = accessToken
	}
	if userID != "" {
		cfg.UserID = userID
	}
	if walletID != "" {
		cfg.WalletID = walletID
	}

	return satsboard.New(cfg, logger)
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/manojv472/Shift-protocol/internal/repository"
	"github.com/manojv472/Shift-protocol/internal/service"
	"github.com/manojv472/Shift-protocol/internal/ui"
	"github.com/manojv472/Shift-protocol/pkg/cleanup"
	"github.com/manojv472/Shift-protocol/pkg/config"
)

func init() {
	service.InitValidator()
}

var (
	resetYes bool
	dataDir  string
)

var rootCmd = &cobra.Command{
	Use:   "shift",
	Short: "Shift-work lifestyle protocol tracker",
	Long:  "Terminal tracker for rotating-shift schedules, home training and daily wellness logs.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if dataDir != "" {
			os.Setenv("SHIFT_DATA_DIR", dataDir)
		}
		setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := openRepo()
		states := service.NewStateService(repo)
		capture := service.NewCaptureService(states)
		training := service.NewTrainingService(states)

		export := func() (string, error) {
			path := defaultExportPath()
			return path, exportSnapshot(repo, path)
		}
		model := ui.NewModel(states, capture, training, export)
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return errors.New("running program error: " + err.Error())
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the stored snapshot document to a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultExportPath()
		if len(args) == 1 {
			path = args[0]
		}
		if err := exportSnapshot(openRepo(), path); err != nil {
			return err
		}
		fmt.Println("exported snapshot to " + path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate and install a previously exported snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.New("reading import file error: " + err.Error())
		}
		states := service.NewStateService(openRepo())
		if err := states.ImportSnapshot(cmd.Context(), data); err != nil {
			return err
		}
		fmt.Println("snapshot imported")
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all data back to first-run defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return errors.New("reset is destructive; re-run with --yes to confirm")
		}
		states := service.NewStateService(openRepo())
		states.Reset(cmd.Context())
		fmt.Println("protocol reset to factory state")
		return nil
	},
}

func openRepo() *repository.SnapshotRepository {
	cfg := config.New()
	return repository.NewSnapshotRepo(&repository.SQLiteCfg{
		Path: filepath.Join(cfg.DataDir(), "snapshot.db"),
	})
}

func defaultExportPath() string {
	return filepath.Join(config.New().DataDir(), "shift-protocol-export.json")
}

func exportSnapshot(repo *repository.SnapshotRepository, path string) error {
	data, err := repo.Raw(context.Background())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("writing export file error: " + err.Error())
	}
	return nil
}

// setupLogging sends slog to a file; the TUI owns the terminal.
func setupLogging() {
	cfg := config.New()
	file, err := os.OpenFile(cfg.LogFile(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Warn("opening log file failed, logging to stderr", slog.String("error", err.Error()))
		return
	}
	cleanup.Register(&cleanup.Job{Name: "closing log file", F: file.Close})
	slog.SetDefault(slog.New(slog.NewTextHandler(file, nil)))
}

func main() {
	defer cleanup.CleanUp()

	rootCmd.AddCommand(exportCmd, importCmd, resetCmd)
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory")
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the wipe")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}

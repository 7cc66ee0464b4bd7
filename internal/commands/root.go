package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/advisor"
	"github.com/chronodesk/chronodesk/internal/db"
	"github.com/chronodesk/chronodesk/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagDBPath string
	flagDebug  bool

	store  *db.Store
	remote advisor.Service
)

var rootCmd = &cobra.Command{
	Use:   "chronodesk",
	Short: "A time tracker and freelance finance tool",
	Long: `chronodesk logs work sessions against your own categories and turns
them into pay summaries, focus and burnout metrics, financial projections,
habit streaks and achievements - all from the terminal.`,
}

// openStore initializes the store, logger and remote client for a command
func openStore() error {
	dbPath := flagDBPath
	if dbPath == "" {
		var err error
		dbPath, err = db.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to resolve database path: %w", err)
		}
	}
	if err := logger.Init(logger.Config{Debug: flagDebug, HomeDir: filepath.Dir(dbPath)}); err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	s, err := db.Open(dbPath)
	if err != nil {
		return err
	}
	store = s
	remote = advisor.NewClient(os.Getenv("CHRONODESK_BACKEND_URL"))
	logger.Debug("store opened", "path", dbPath)
	return nil
}

// withStore wraps a command handler with store initialization
func withStore(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := openStore(); err != nil {
			return err
		}
		defer store.Close()
		return fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chronodesk %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the database file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging to stderr")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(burnoutCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(habitsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(licenseCmd)
	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(versionCmd)
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/seriv/go-xp-dashboard/internal/config"
	"github.com/seriv/go-xp-dashboard/internal/util"
	"github.com/spf13/cobra"
)

var (
	debug      bool
	configPath string

	// Render options
	outputPath  string
	timezone    string
	topProjects int

	rootCmd = &cobra.Command{
		Use:   "go-xp-dashboard",
		Short: "Learner XP dashboard generator",
		Long: `go-xp-dashboard fetches your activity records (XP transactions,
audit counts, project results) from the school GraphQL API and renders
them as an interactive SVG dashboard.

Examples:
  go-xp-dashboard login                      # Authenticate and store a session
  go-xp-dashboard                            # Render dashboard.html
  go-xp-dashboard --output ~/profile.html    # Render to a custom path
  go-xp-dashboard --top 15                   # Rank 15 projects instead of 10
  go-xp-dashboard serve --addr :8080         # Serve with live config reload`,
		RunE: runRender,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(),
		"Config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Output HTML path (overrides config)")
	rootCmd.Flags().StringVar(&timezone, "timezone", "",
		"Timezone for date labels (e.g. Europe/Helsinki, overrides config)")
	rootCmd.Flags().IntVar(&topProjects, "top", 0,
		"Number of ranked projects to draw (overrides config)")
}

// setup initializes logging and the time provider and loads the
// configuration with flag overrides applied. Every subcommand goes
// through here.
func setup() (config.Config, error) {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := filepath.Join(config.AppDir(), "logs", "app.log")
	_ = os.MkdirAll(filepath.Dir(logFile), 0755)
	util.InitLogger(logLevel, logFile, debug)

	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if outputPath != "" {
		cfg.Output = outputPath
	}
	if timezone != "" {
		cfg.Timezone = timezone
	}
	if topProjects > 0 {
		cfg.TopProjects = topProjects
	}

	if err := util.InitializeTimeProvider(cfg.Timezone); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	page, err := buildPage(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}
	if err := page.WriteFile(cfg.Output); err != nil {
		return err
	}

	util.LogInfof("Dashboard written to %s", cfg.Output)
	fmt.Printf("Dashboard written to %s\n", cfg.Output)
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/config"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/logger"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"

	"github.com/spf13/cobra"
)

var (
	timeoutSeconds int
	logLevel       string
	apiBaseURL     string
)

var rootCmd = &cobra.Command{
	Use:   "spbuctl",
	Short: "A CLI and TUI for the SPbU timetable",
	Long: `spbuctl is an application for students and staff of Saint Petersburg University
to browse group, educator, classroom and extracurricular timetables and export them to .ics files.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 0, "Request timeout in seconds (default from config or SPBU_TT_API_REQUEST_TIMEOUT)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error or disabled")
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "base-url", "", "Override the timetable API root")
}

// newClient builds an API client from the saved config, with flags taking precedence.
func newClient() (*timetable.Client, *config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	levelName := string(logger.Disabled)
	if cfg.LogLevel != "" {
		levelName = cfg.LogLevel
	}
	if logLevel != "" {
		levelName = logLevel
	}
	level, ok := logger.ParseLevel(levelName)
	if !ok {
		return nil, nil, fmt.Errorf("unknown log level %q", levelName)
	}

	opts := []timetable.Option{
		timetable.WithLogger(logger.New(logger.Config{Level: level, Pretty: true, Output: os.Stderr})),
	}

	switch {
	case timeoutSeconds > 0:
		opts = append(opts, timetable.WithTimeout(time.Duration(timeoutSeconds)*time.Second))
	case cfg.TimeoutSeconds > 0:
		opts = append(opts, timetable.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}

	switch {
	case apiBaseURL != "":
		opts = append(opts, timetable.WithBaseURL(apiBaseURL))
	case cfg.BaseURL != "":
		opts = append(opts, timetable.WithBaseURL(cfg.BaseURL))
	}

	return timetable.NewClient(opts...), cfg, nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var extracurCmd = &cobra.Command{
	Use:   "extracur",
	Short: "Browse extracurricular events",
}

var extracurDivisionsCmd = &cobra.Command{
	Use:   "divisions",
	Short: "List divisions publishing extracurricular events",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		var divisions []timetable.ExtracurDivision
		_ = spinner.New().
			Title("Fetching extracurricular divisions...").
			Action(func() {
				divisions, err = client.FetchExtracurDivisions()
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch extracurricular divisions: %w", err)
		}

		for _, d := range divisions {
			fmt.Printf("%-12s %s\n", d.Alias, d.Name)
		}
		return nil
	},
}

var extracurEventsCmd = &cobra.Command{
	Use:   "events <divisionAlias>",
	Short: "Show a division's extracurricular events for a month",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fromFlag, _ := cmd.Flags().GetString("from")
		from, err := parseDate("from", fromFlag)
		if err != nil {
			return err
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		var events *timetable.ExtracurEvents
		_ = spinner.New().
			Title("Fetching extracurricular events...").
			Action(func() {
				events, err = client.FetchExtracurEvents(args[0], from)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch extracurricular events: %w", err)
		}

		tui.RenderExtracurEvents(os.Stdout, events)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extracurCmd)
	extracurCmd.AddCommand(extracurDivisionsCmd, extracurEventsCmd)

	extracurEventsCmd.Flags().String("from", "", "Start date (YYYY-MM-DD), defaults to the current month")
}

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/exporter"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Directly export a group or educator timetable to an ICS file",
	Long:  `Export one or more weeks of a group or educator timetable to an ICS file without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, _ := cmd.Flags().GetInt("group")
		educatorID, _ := cmd.Flags().GetInt("educator")
		output, _ := cmd.Flags().GetString("output")
		weeks, _ := cmd.Flags().GetInt("weeks")

		if (groupID > 0) == (educatorID > 0) {
			return fmt.Errorf("exactly one of --group or --educator is required")
		}
		if weeks < 1 {
			return fmt.Errorf("--weeks must be at least 1")
		}
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		client, cfg, err := newClient()
		if err != nil {
			return err
		}

		opts, err := eventsOptionsFromFlags(cmd, tui.LessonsType(cfg))
		if err != nil {
			return err
		}
		from := opts.From
		if from.IsZero() {
			from = tui.WeekStart(time.Now())
		}
		to := opts.To
		if to.IsZero() {
			to = from.AddDate(0, 0, 7*weeks-1)
		}

		var events []exporter.Event
		_ = spinner.New().
			Title(fmt.Sprintf("Exporting timetable to %s...", output)).
			Action(func() {
				if groupID > 0 {
					var ge *timetable.GroupEvents
					ge, err = client.FetchGroupEvents(groupID, timetable.EventsOptions{From: from, To: to, LessonsType: opts.LessonsType})
					if err == nil {
						events = exporter.GroupEvents(ge)
					}
					return
				}
				var ee *timetable.EducatorEvents
				ee, err = client.FetchEducatorEvents(educatorID, from, to, opts.LessonsType)
				if err == nil {
					events = exporter.EducatorEvents(ee)
				}
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch timetable: %w", err)
		}

		if len(events) == 0 {
			return fmt.Errorf("no events between %s and %s", from.Format(dateFlagLayout), to.Format(dateFlagLayout))
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		err = exporter.GenerateICS(events, file)
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d events to %s\n", len(events), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntP("group", "g", 0, "Group ID to export (e.g. 18150)")
	exportCmd.Flags().IntP("educator", "e", 0, "Educator ID to export (e.g. 2151)")
	exportCmd.Flags().StringP("output", "o", "timetable.ics", "Output file path")
	exportCmd.Flags().IntP("weeks", "w", 1, "Number of weeks to export when --to is not given")
	addEventsFlags(exportCmd)
}

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var educatorsCmd = &cobra.Command{
	Use:   "educators",
	Short: "Search educators and show their timetables",
}

var educatorsSearchCmd = &cobra.Command{
	Use:   "search <lastName>",
	Short: "Find educators by (part of) their last name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		client, _, err := newClient()
		if err != nil {
			return err
		}

		var educators []timetable.Educator
		_ = spinner.New().
			Title(fmt.Sprintf("Searching for '%s'...", query)).
			Action(func() {
				educators, err = client.SearchEducators(query)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to search educators: %w", err)
		}

		if len(educators) == 0 {
			fmt.Println(tui.RenderError(fmt.Sprintf("No educators found for '%s'", query)))
			return nil
		}

		for _, e := range educators {
			fmt.Printf("%-8d %s\n", e.ID, e.FullName)
			for _, emp := range e.Employments {
				fmt.Printf("         %s, %s\n", emp.Position, emp.Department)
			}
		}
		return nil
	},
}

var educatorsEventsCmd = &cobra.Command{
	Use:   "events <educatorId>",
	Short: "Show an educator's week, date range or whole term",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		educatorID, err := parseID("educator", args[0])
		if err != nil {
			return err
		}

		term, _ := cmd.Flags().GetBool("term")
		nextTerm, _ := cmd.Flags().GetBool("next-term")

		client, cfg, err := newClient()
		if err != nil {
			return err
		}

		opts, err := eventsOptionsFromFlags(cmd, tui.LessonsType(cfg))
		if err != nil {
			return err
		}

		if term || nextTerm {
			var events *timetable.EducatorTermEvents
			_ = spinner.New().
				Title("Fetching the term timetable...").
				Action(func() {
					events, err = client.FetchEducatorTermEvents(educatorID, nextTerm, opts.LessonsType)
				}).
				Run()

			if err != nil {
				return fmt.Errorf("failed to fetch educator term events: %w", err)
			}

			tui.RenderEducatorTermEvents(os.Stdout, events)
			return nil
		}

		from, to := weekRange(opts.From, opts.To)

		var events *timetable.EducatorEvents
		_ = spinner.New().
			Title("Fetching the timetable...").
			Action(func() {
				events, err = client.FetchEducatorEvents(educatorID, from, to, opts.LessonsType)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch educator events: %w", err)
		}

		tui.RenderEducatorEvents(os.Stdout, events)
		return nil
	},
}

// weekRange fills in a missing start with this Monday and a missing end with the following Sunday.
func weekRange(from, to time.Time) (time.Time, time.Time) {
	if from.IsZero() {
		from = tui.WeekStart(time.Now())
	}
	if to.IsZero() {
		to = from.AddDate(0, 0, 6)
	}
	return from, to
}

func init() {
	rootCmd.AddCommand(educatorsCmd)
	educatorsCmd.AddCommand(educatorsSearchCmd, educatorsEventsCmd)

	addEventsFlags(educatorsEventsCmd)
	educatorsEventsCmd.Flags().Bool("term", false, "Show the recurring schedule of the current term")
	educatorsEventsCmd.Flags().Bool("next-term", false, "Show the recurring schedule of the next term")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var divisionsCmd = &cobra.Command{
	Use:   "divisions",
	Short: "List study divisions and their aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		var divisions []timetable.StudyDivision
		_ = spinner.New().
			Title("Fetching study divisions...").
			Action(func() {
				divisions, err = client.FetchStudyDivisions()
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch study divisions: %w", err)
		}

		for _, d := range divisions {
			fmt.Printf("%-8s %s\n", d.Alias, d.Name)
		}
		return nil
	},
}

var levelsCmd = &cobra.Command{
	Use:   "levels [divisionAlias]",
	Short: "List the study programmes of a division",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}

		alias := cfg.DefaultDivision
		if len(args) == 1 {
			alias = args[0]
		}
		if alias == "" {
			return fmt.Errorf("no division alias given and no default division configured")
		}

		var levels []timetable.StudyLevel
		_ = spinner.New().
			Title(fmt.Sprintf("Fetching programmes of %s...", alias)).
			Action(func() {
				levels, err = client.FetchProgramLevels(alias)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch programme levels: %w", err)
		}

		for _, l := range levels {
			fmt.Println(tui.RenderAccent(l.Name))
			for _, c := range l.Combinations {
				fmt.Printf("  %s\n", c.Name)
				for _, y := range c.AdmissionYears {
					if y.IsEmpty {
						continue
					}
					fmt.Printf("    %s  program %d\n", y.YearName, y.ProgramID)
				}
			}
		}
		return nil
	},
}

var groupsCmd = &cobra.Command{
	Use:   "groups <programId>",
	Short: "List the student groups of a programme admission year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		programID, err := parseID("program", args[0])
		if err != nil {
			return err
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		var groups []timetable.Group
		_ = spinner.New().
			Title("Fetching groups...").
			Action(func() {
				groups, err = client.FetchProgramGroups(programID)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch groups: %w", err)
		}

		for _, g := range groups {
			fmt.Printf("%-8d %s  %s\n", g.ID, g.Name, g.StudyForm)
		}
		return nil
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events <groupId>",
	Short: "Show a group's timetable for a week or a date range",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseID("group", args[0])
		if err != nil {
			return err
		}

		client, cfg, err := newClient()
		if err != nil {
			return err
		}

		opts, err := eventsOptionsFromFlags(cmd, tui.LessonsType(cfg))
		if err != nil {
			return err
		}

		var events *timetable.GroupEvents
		_ = spinner.New().
			Title("Fetching the timetable...").
			Action(func() {
				events, err = client.FetchGroupEvents(groupID, opts)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch group events: %w", err)
		}

		tui.RenderGroupEvents(os.Stdout, events)
		return nil
	},
}

// eventsOptionsFromFlags reads --from, --to and --lessons.
func eventsOptionsFromFlags(cmd *cobra.Command, fallback timetable.LessonsType) (timetable.EventsOptions, error) {
	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")
	lessonsFlag, _ := cmd.Flags().GetString("lessons")

	var opts timetable.EventsOptions
	var err error

	if opts.From, err = parseDate("from", fromFlag); err != nil {
		return opts, err
	}
	if opts.To, err = parseDate("to", toFlag); err != nil {
		return opts, err
	}
	if !opts.To.IsZero() && opts.From.IsZero() {
		return opts, fmt.Errorf("--to requires --from")
	}
	if opts.LessonsType, err = parseLessons(lessonsFlag, fallback); err != nil {
		return opts, err
	}
	return opts, nil
}

func addEventsFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "First day (YYYY-MM-DD); alone it selects the week starting there")
	cmd.Flags().String("to", "", "Last day (YYYY-MM-DD), requires --from")
	cmd.Flags().String("lessons", "", "Lessons filter: All, Primary, Attestation, Final or Unknown")
}

func init() {
	rootCmd.AddCommand(divisionsCmd, levelsCmd, groupsCmd, eventsCmd)
	addEventsFlags(eventsCmd)
}

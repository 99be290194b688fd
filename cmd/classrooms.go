package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var addressesCmd = &cobra.Command{
	Use:   "addresses",
	Short: "List university buildings with classrooms matching a filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := filterFromFlags(cmd)
		if err != nil {
			return err
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		var addresses []timetable.Address
		_ = spinner.New().
			Title("Fetching addresses...").
			Action(func() {
				addresses, err = client.FetchAddresses(filter)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch addresses: %w", err)
		}

		for _, a := range addresses {
			fmt.Printf("%s  %s (%d matching)\n", a.ID, a.DisplayName, a.Matches)
			if a.WantingEquipment != "" {
				fmt.Printf("    missing: %s\n", a.WantingEquipment)
			}
		}
		return nil
	},
}

var classroomsCmd = &cobra.Command{
	Use:   "classrooms <addressId>",
	Short: "List the classrooms of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addressID, err := parseGUID("address", args[0])
		if err != nil {
			return err
		}
		filter, err := filterFromFlags(cmd)
		if err != nil {
			return err
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		var classrooms []timetable.Classroom
		_ = spinner.New().
			Title("Fetching classrooms...").
			Action(func() {
				classrooms, err = client.FetchClassrooms(addressID, filter)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch classrooms: %w", err)
		}

		for _, c := range classrooms {
			fmt.Printf("%s  %s  %s, %d seats\n", c.ID, c.DisplayName, c.SeatingType, c.Capacity)
			if c.AdditionalInfo != "" {
				fmt.Printf("    %s\n", c.AdditionalInfo)
			}
		}
		return nil
	},
}

var busyCmd = &cobra.Command{
	Use:   "busy <classroomId>",
	Short: "Check whether a classroom is occupied during an interval",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		classroomID, err := parseGUID("classroom", args[0])
		if err != nil {
			return err
		}
		startFlag, _ := cmd.Flags().GetString("start")
		endFlag, _ := cmd.Flags().GetString("end")

		start, err := parseStamp("start", startFlag)
		if err != nil {
			return err
		}
		end, err := parseStamp("end", endFlag)
		if err != nil {
			return err
		}
		if !end.After(start) {
			return fmt.Errorf("--end must be after --start")
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		var busy *timetable.ClassroomBusyness
		_ = spinner.New().
			Title("Checking the classroom...").
			Action(func() {
				busy, err = client.FetchClassroomBusyness(classroomID, start, end)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to check classroom: %w", err)
		}

		if busy.IsBusy {
			fmt.Println(tui.RenderError("Busy"))
		} else {
			fmt.Println(tui.RenderAccent("Free"))
		}
		return nil
	},
}

var roomEventsCmd = &cobra.Command{
	Use:   "room-events <classroomId>",
	Short: "Show the events held in a classroom",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		classroomID, err := parseGUID("classroom", args[0])
		if err != nil {
			return err
		}
		fromFlag, _ := cmd.Flags().GetString("from")
		days, _ := cmd.Flags().GetInt("days")

		from := tui.WeekStart(time.Now())
		if fromFlag != "" {
			if from, err = parseDate("from", fromFlag); err != nil {
				return err
			}
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		var events *timetable.ClassroomEvents
		_ = spinner.New().
			Title("Fetching classroom events...").
			Action(func() {
				events, err = client.FetchClassroomEvents(classroomID, from, from.AddDate(0, 0, days))
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch classroom events: %w", err)
		}

		tui.RenderClassroomEvents(os.Stdout, events)
		return nil
	},
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("seating", "", "Seating type: theater, amphitheater or roundtable")
	cmd.Flags().Int("capacity", 0, "Minimal number of seats")
	cmd.Flags().StringSlice("equipment", nil, "Required equipment (comma separated)")
}

func filterFromFlags(cmd *cobra.Command) (timetable.ClassroomFilter, error) {
	seating, _ := cmd.Flags().GetString("seating")
	equipment, _ := cmd.Flags().GetStringSlice("equipment")

	var capacity *int
	if cmd.Flags().Changed("capacity") {
		n, _ := cmd.Flags().GetInt("capacity")
		capacity = &n
	}
	return classroomFilter(seating, capacity, equipment)
}

func init() {
	rootCmd.AddCommand(addressesCmd, classroomsCmd, busyCmd, roomEventsCmd)

	addFilterFlags(addressesCmd)
	addFilterFlags(classroomsCmd)

	busyCmd.Flags().String("start", "", `Interval start, e.g. "2019-04-01 10:00"`)
	busyCmd.Flags().String("end", "", `Interval end, e.g. "2019-04-01 11:35"`)
	busyCmd.MarkFlagRequired("start")
	busyCmd.MarkFlagRequired("end")

	roomEventsCmd.Flags().String("from", "", "First day (YYYY-MM-DD), defaults to this Monday")
	roomEventsCmd.Flags().Int("days", 7, "Number of days to show")
}

package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/config"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/exporter"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

const (
	currentTerm = 10
	nextTerm    = 11
)

// RunEducatorTUI searches an educator by last name and shows their week or term
func RunEducatorTUI(client *timetable.Client) error {
	cfg, _ := config.Load()
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	var query string
	searchForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Educator's last name").
				Placeholder("e.g. Иванов").
				Value(&query).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("enter at least a part of the name")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := searchForm.Run(); err != nil {
		return err
	}

	var educators []timetable.Educator
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Searching for '%s'...", query)).
		Action(func() {
			educators, err = client.SearchEducators(strings.TrimSpace(query))
		}).
		Run()

	if err != nil {
		return fmt.Errorf("failed to search educators: %w", err)
	}

	if len(educators) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ No educators found for '%s'", query)))
		return nil
	}

	var educatorID int
	var educatorOptions []huh.Option[int]
	for _, e := range educators {
		label := e.FullName
		if len(e.Employments) > 0 {
			label = fmt.Sprintf("%s · %s", e.FullName, e.Employments[0].Department)
		}
		educatorOptions = append(educatorOptions, huh.NewOption(label, e.ID))
	}

	var period int
	periodOptions := append(weekOptions(),
		huh.NewOption("Whole current term", currentTerm),
		huh.NewOption("Whole next term", nextTerm),
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select the educator").
				Options(educatorOptions...).
				Value(&educatorID).
				Height(10),
			huh.NewSelect[int]().
				Title("Which period?").
				Options(periodOptions...).
				Value(&period),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if cfg.AddEducator(educatorID) {
		// listed on the settings screen; save errors are ignored here
		_ = config.Save(cfg)
	}

	lessons := LessonsType(cfg)

	if period == currentTerm || period == nextTerm {
		var term *timetable.EducatorTermEvents
		_ = spinner.New().
			Title("Fetching the term timetable...").
			Action(func() {
				term, err = client.FetchEducatorTermEvents(educatorID, period == nextTerm, lessons)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch educator term events: %w", err)
		}

		RenderEducatorTermEvents(os.Stdout, term)
		return nil
	}

	from := WeekStart(time.Now()).AddDate(0, 0, 7*period)
	to := from.AddDate(0, 0, 6)

	var events *timetable.EducatorEvents
	_ = spinner.New().
		Title("Fetching the timetable...").
		Action(func() {
			events, err = client.FetchEducatorEvents(educatorID, from, to, lessons)
		}).
		Run()

	if err != nil {
		return fmt.Errorf("failed to fetch educator events: %w", err)
	}

	return showOrExport(
		func() { RenderEducatorEvents(os.Stdout, events) },
		func() []exporter.Event { return exporter.EducatorEvents(events) },
		fmt.Sprintf("educator-%d.ics", educatorID),
	)
}

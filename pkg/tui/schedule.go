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

const browseGroups = -1

// RunScheduleTUI walks division, level, programme, admission year and group,
// then prints or exports the chosen week
func RunScheduleTUI(client *timetable.Client) error {
	fmt.Println(accentStyle.Render("SPbU timetable"))

	cfg, _ := config.Load()
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	groupID := browseGroups
	if len(cfg.SavedGroupIDs) > 0 {
		options := []huh.Option[int]{huh.NewOption("🔎 Browse all groups", browseGroups)}
		for _, id := range cfg.SavedGroupIDs {
			options = append(options, huh.NewOption(fmt.Sprintf("Saved group %d", id), id))
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int]().
					Title("Which group?").
					Options(options...).
					Value(&groupID),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}
	}

	if groupID == browseGroups {
		group, err := pickGroup(client, cfg)
		if err != nil || group == nil {
			return err
		}
		groupID = group.ID

		if cfg.AddGroup(group.ID) {
			save := false
			confirm := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Save %s for quick access?", group.Name)).
						Value(&save),
				),
			).WithTheme(GetTheme())
			if err := confirm.Run(); err != nil {
				return err
			}
			if save {
				if err := config.Save(cfg); err != nil {
					return err
				}
			}
		}
	}

	var weekOffset int
	weekForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which week?").
				Options(weekOptions()...).
				Value(&weekOffset),
		),
	).WithTheme(GetTheme())

	if err := weekForm.Run(); err != nil {
		return err
	}

	opts := timetable.EventsOptions{LessonsType: LessonsType(cfg)}
	if weekOffset != 0 {
		opts.From = WeekStart(time.Now()).AddDate(0, 0, 7*weekOffset)
	}

	var events *timetable.GroupEvents
	var err error

	_ = spinner.New().
		Title("Fetching the timetable...").
		Action(func() {
			events, err = client.FetchGroupEvents(groupID, opts)
		}).
		Run()

	if err != nil {
		return fmt.Errorf("failed to fetch group events: %w", err)
	}

	return showOrExport(
		func() { RenderGroupEvents(os.Stdout, events) },
		func() []exporter.Event { return exporter.GroupEvents(events) },
		fmt.Sprintf("group-%d.ics", groupID),
	)
}

// pickGroup narrows down to a single group; nil means the user found nothing to pick.
func pickGroup(client *timetable.Client, cfg *config.AppConfig) (*timetable.Group, error) {
	var divisions []timetable.StudyDivision
	var err error

	_ = spinner.New().
		Title("Fetching study divisions...").
		Action(func() {
			divisions, err = client.FetchStudyDivisions()
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch study divisions: %w", err)
	}

	alias := cfg.DefaultDivision
	var divisionOptions []huh.Option[string]
	for _, d := range divisions {
		opt := huh.NewOption(d.Name, d.Alias)
		if d.Alias == alias {
			opt = opt.Selected(true)
		}
		divisionOptions = append(divisionOptions, opt)
	}

	divisionForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your division").
				Description("Start typing to filter.").
				Options(divisionOptions...).
				Value(&alias).
				Filtering(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := divisionForm.Run(); err != nil {
		return nil, err
	}

	var levels []timetable.StudyLevel
	_ = spinner.New().
		Title(fmt.Sprintf("Fetching programmes of %s...", alias)).
		Action(func() {
			levels, err = client.FetchProgramLevels(alias)
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch programme levels: %w", err)
	}

	if len(levels) == 0 {
		fmt.Println(errorStyle.Render("This division has no study programmes!"))
		return nil, nil
	}

	var level, combination int
	var levelOptions []huh.Option[int]
	for i, l := range levels {
		levelOptions = append(levelOptions, huh.NewOption(l.Name, i))
	}

	programForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Study level").
				Options(levelOptions...).
				Value(&level),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Programme").
				OptionsFunc(func() []huh.Option[int] {
					var opts []huh.Option[int]
					for i, c := range levels[level].Combinations {
						opts = append(opts, huh.NewOption(c.Name, i))
					}
					return opts
				}, &level).
				Value(&combination).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := programForm.Run(); err != nil {
		return nil, err
	}

	combinations := levels[level].Combinations
	if combination >= len(combinations) {
		fmt.Println(errorStyle.Render("No programme selected!"))
		return nil, nil
	}

	var programID int
	var yearOptions []huh.Option[int]
	for _, y := range combinations[combination].AdmissionYears {
		if y.IsEmpty {
			continue
		}
		yearOptions = append(yearOptions, huh.NewOption(y.YearName, y.ProgramID))
	}

	if len(yearOptions) == 0 {
		fmt.Println(errorStyle.Render("This programme has no groups yet!"))
		return nil, nil
	}

	yearForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Admission year").
				Options(yearOptions...).
				Value(&programID),
		),
	).WithTheme(GetTheme())

	if err := yearForm.Run(); err != nil {
		return nil, err
	}

	var groups []timetable.Group
	_ = spinner.New().
		Title("Fetching groups...").
		Action(func() {
			groups, err = client.FetchProgramGroups(programID)
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}

	if len(groups) == 0 {
		fmt.Println(errorStyle.Render("No groups found for this admission year!"))
		return nil, nil
	}

	var picked int
	var groupOptions []huh.Option[int]
	for i, g := range groups {
		label := g.Name
		if g.StudyForm != "" {
			label = fmt.Sprintf("%s (%s)", g.Name, g.StudyForm)
		}
		groupOptions = append(groupOptions, huh.NewOption(label, i))
	}

	groupForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select your group").
				Options(groupOptions...).
				Value(&picked),
		),
	).WithTheme(GetTheme())

	if err := groupForm.Run(); err != nil {
		return nil, err
	}

	return &groups[picked], nil
}

// showOrExport asks whether to print the timetable or write it to an ICS file.
func showOrExport(render func(), events func() []exporter.Event, defaultFile string) error {
	var action string
	outputFile := defaultFile

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What now?").
				Options(
					huh.NewOption("Show in terminal", "show"),
					huh.NewOption("Export to calendar (.ics)", "export"),
				).
				Value(&action),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return action != "export" }),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if action != "export" {
		render()
		return nil
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	exported := events()
	if len(exported) == 0 {
		fmt.Println(errorStyle.Render("Nothing to export for this period!"))
		return nil
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(exported, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d events to %s", len(exported), outputFile)))
	return nil
}

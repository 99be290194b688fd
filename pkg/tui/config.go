package tui

import (
	"fmt"
	"strings"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/config"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI(client *timetable.Client) error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Lessons Filter", "lessons"),
						huh.NewOption("Set Default Division", "division"),
						huh.NewOption("Manage Saved Groups", "groups"),
						huh.NewOption("Manage Saved Educators", "educators"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "lessons":
			err = runSetLessonsTUI(cfg)
		case "division":
			err = runSetDivisionTUI(client, cfg)
		case "groups":
			err = runPruneIDsTUI(cfg, "Saved groups", &cfg.SavedGroupIDs)
		case "educators":
			err = runPruneIDsTUI(cfg, "Saved educators", &cfg.SavedEducatorIDs)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.spbuctl.yaml) ---"))
			fmt.Println(DescribeConfig(cfg))
		}

		if err != nil {
			return err
		}
	}
}

// DescribeConfig renders the settings as aligned "key: value" lines.
func DescribeConfig(cfg *config.AppConfig) string {
	orUnset := func(s string) string {
		if s == "" {
			return "not set"
		}
		return s
	}
	timeout := "default"
	if cfg.TimeoutSeconds > 0 {
		timeout = fmt.Sprintf("%ds", cfg.TimeoutSeconds)
	}

	lines := []string{
		fmt.Sprintf("API Base URL:     %s", orUnset(cfg.BaseURL)),
		fmt.Sprintf("Request Timeout:  %s", timeout),
		fmt.Sprintf("Log Level:        %s", orUnset(cfg.LogLevel)),
		fmt.Sprintf("Lessons Filter:   %s", LessonsType(cfg)),
		fmt.Sprintf("Default Division: %s", orUnset(cfg.DefaultDivision)),
		fmt.Sprintf("Saved Groups:     %d", len(cfg.SavedGroupIDs)),
		fmt.Sprintf("Saved Educators:  %d", len(cfg.SavedEducatorIDs)),
		fmt.Sprintf("Accent Color:     %s", orUnset(cfg.AccentColor)),
	}
	return strings.Join(lines, "\n") + "\n"
}

func runSetLessonsTUI(cfg *config.AppConfig) error {
	selected := string(LessonsType(cfg))

	var options []huh.Option[string]
	for _, lt := range timetable.LessonsTypes {
		options = append(options, huh.NewOption(string(lt), string(lt)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which lessons should timetables include?").
				Description("Unknown lets the service decide.").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.LessonsType = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Lessons filter changed to: %s\n", selected)))
	return nil
}

func runSetDivisionTUI(client *timetable.Client, cfg *config.AppConfig) error {
	var divisions []timetable.StudyDivision
	var err error

	_ = spinner.New().
		Title("Fetching study divisions...").
		Action(func() {
			divisions, err = client.FetchStudyDivisions()
		}).
		Run()

	if err != nil {
		return fmt.Errorf("failed to fetch study divisions: %w", err)
	}

	selected := cfg.DefaultDivision
	var options []huh.Option[string]
	for _, d := range divisions {
		options = append(options, huh.NewOption(d.Name, d.Alias))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your default division").
				Options(options...).
				Value(&selected).
				Filtering(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DefaultDivision = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default division changed to: %s\n", selected)))
	return nil
}

// runPruneIDsTUI lets the user keep a subset of *ids and persists the result.
func runPruneIDsTUI(cfg *config.AppConfig, title string, ids *[]int) error {
	if len(*ids) == 0 {
		fmt.Println(errorStyle.Render("Nothing saved yet! Open a timetable first to save it."))
		return nil
	}

	var options []huh.Option[int]
	for _, id := range *ids {
		options = append(options, huh.NewOption(fmt.Sprintf("%d", id), id).Selected(true))
	}

	var kept []int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title(title).
				Description("Space = toggle, Enter = confirm. Unselected entries are removed.").
				Options(options...).
				Value(&kept),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	total := len(*ids)
	*ids = kept
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Kept %d of %d entries.\n", len(kept), total)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for spbuctl").
				Description("Select a curated style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s SPbU Red", colorBlock(defaultAccent)), defaultAccent),
					huh.NewOption(fmt.Sprintf("%s Neva Blue", colorBlock("33")), "33"),
					huh.NewOption(fmt.Sprintf("%s White Nights", colorBlock("189")), "189"),
					huh.NewOption(fmt.Sprintf("%s Summer Garden", colorBlock("35")), "35"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						candidate := config.AppConfig{AccentColor: str}
						return candidate.Validate()
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}

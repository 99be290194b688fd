package tui

import (
	"time"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/config"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// defaultAccent is SPbU red in the ANSI 256 palette
const defaultAccent = "160"

var (
	// These act as fallbacks initially, but are replaced by GetTheme()
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// GetTheme loads the user's saved accent colour and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := defaultAccent

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Update the global lipgloss accent so plain CLI output also receives the color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "235"})
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RenderAccent styles s with the current accent colour.
func RenderAccent(s string) string {
	return accentStyle.Render(s)
}

// RenderError styles s as an error message.
func RenderError(s string) string {
	return errorStyle.Render(s)
}

// RunTUI launches the main menu interactive form experience
func RunTUI(client *timetable.Client) error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("📅 Group Timetable", "schedule"),
					huh.NewOption("🎓 Educator Timetable", "educator"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	switch action {
	case "educator":
		return RunEducatorTUI(client)
	case "config":
		return RunConfigTUI(client)
	}

	return RunScheduleTUI(client)
}

// LessonsType returns the saved lessons filter, or the service default.
func LessonsType(cfg *config.AppConfig) timetable.LessonsType {
	if cfg == nil {
		return timetable.LessonsUnknown
	}
	if lt, ok := timetable.ParseLessonsType(cfg.LessonsType); ok {
		return lt
	}
	return timetable.LessonsUnknown
}

// WeekStart returns midnight of the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekOptions offers week offsets relative to the current week.
func weekOptions() []huh.Option[int] {
	return []huh.Option[int]{
		huh.NewOption("Previous week", -1),
		huh.NewOption("This week", 0).Selected(true),
		huh.NewOption("Next week", 1),
		huh.NewOption("In two weeks", 2),
	}
}

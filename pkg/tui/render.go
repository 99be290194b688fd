package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cancelledStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241"))
	dayCaser       = cases.Title(language.Russian)
)

// dayHeading capitalises the first word of a day string ("понедельник, 1 апреля").
func dayHeading(s string) string {
	parts := strings.SplitN(s, " ", 2)
	parts[0] = dayCaser.String(parts[0])
	return accentStyle.Bold(true).Render(strings.Join(parts, " "))
}

func interval(text string, start, end *time.Time) string {
	if text != "" {
		return text
	}
	if start == nil || end == nil {
		return "--:--"
	}
	return start.Format("15:04") + "–" + end.Format("15:04")
}

func eventLine(w io.Writer, when, subject, where, who string, cancelled bool) {
	line := fmt.Sprintf("%s  %s", when, subject)
	if cancelled {
		line = cancelledStyle.Render(line) + " " + errorStyle.Render("(cancelled)")
	}
	fmt.Fprintf(w, "  %s\n", line)
	if where != "" {
		fmt.Fprintf(w, "      %s\n", dimStyle.Render(where))
	}
	if who != "" {
		fmt.Fprintf(w, "      %s\n", dimStyle.Render(who))
	}
}

// RenderGroupEvents prints a group's week day by day
func RenderGroupEvents(w io.Writer, e *timetable.GroupEvents) {
	fmt.Fprintln(w, accentStyle.Render(fmt.Sprintf("%s · %s", e.GroupDisplayName, e.WeekDisplayText)))
	if len(e.Days) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No events this week."))
		return
	}
	for _, day := range e.Days {
		fmt.Fprintln(w)
		fmt.Fprintln(w, dayHeading(day.DayString))
		for _, ev := range day.Events {
			eventLine(w, interval(ev.TimeIntervalString, ev.Start, ev.End), ev.Subject,
				ev.LocationsDisplayText, ev.EducatorsDisplayText, ev.IsCancelled)
		}
	}
}

// RenderEducatorEvents prints an educator's week day by day
func RenderEducatorEvents(w io.Writer, e *timetable.EducatorEvents) {
	fmt.Fprintln(w, accentStyle.Render(fmt.Sprintf("%s · %s", e.EducatorLongDisplayText, e.WeekDisplayText)))
	if len(e.Days) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No events this week."))
		return
	}
	for _, day := range e.Days {
		fmt.Fprintln(w)
		fmt.Fprintln(w, dayHeading(day.DayString))
		for _, ev := range day.Events {
			eventLine(w, interval(ev.TimeIntervalString, ev.Start, ev.End), ev.Subject,
				ev.LocationsDisplayText, ev.ContingentUnitName, ev.IsCancelled)
		}
	}
}

// RenderEducatorTermEvents prints the recurring weekly slots of a term
func RenderEducatorTermEvents(w io.Writer, e *timetable.EducatorTermEvents) {
	fmt.Fprintln(w, accentStyle.Render(fmt.Sprintf("%s · %s", e.EducatorLongDisplayText, e.DateRangeDisplayText)))
	if !e.HasEvents {
		fmt.Fprintln(w, dimStyle.Render("No events this term."))
		return
	}
	for _, day := range e.Days {
		fmt.Fprintln(w)
		fmt.Fprintln(w, dayHeading(day.DayString))
		for _, ev := range day.Events {
			var where []string
			for _, loc := range ev.Locations {
				where = append(where, loc.DisplayName)
			}
			eventLine(w, ev.TimeIntervalString, ev.Subject, strings.Join(where, "; "),
				strings.Join(ev.Dates, ", "), ev.IsCancelled)
		}
	}
}

// RenderClassroomEvents prints the weekly occupation plan of a classroom
func RenderClassroomEvents(w io.Writer, e *timetable.ClassroomEvents) {
	fmt.Fprintln(w, accentStyle.Render(e.DisplayText))
	if !e.HasEvents {
		fmt.Fprintln(w, dimStyle.Render("The classroom is free."))
		return
	}
	for _, day := range e.Days {
		fmt.Fprintln(w)
		fmt.Fprintln(w, dayHeading(day.DayString))
		for _, ev := range day.Events {
			var groups []string
			for _, u := range ev.ContingentUnits {
				groups = append(groups, u.Groups)
			}
			eventLine(w, ev.TimeIntervalString, ev.Subject, strings.Join(groups, ", "),
				ev.EducatorsDisplayText, ev.IsCancelled)
		}
	}
}

// RenderExtracurEvents prints a division's extracurricular month
func RenderExtracurEvents(w io.Writer, e *timetable.ExtracurEvents) {
	fmt.Fprintln(w, accentStyle.Render(fmt.Sprintf("%s · %s", e.Title, e.ChosenMonthDisplayText)))
	if !e.HasEventsToShow {
		fmt.Fprintln(w, dimStyle.Render("No events this month."))
		return
	}
	for _, g := range e.Groupings {
		if e.ShowGroupingCaptions && g.Caption != "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, accentStyle.Underline(true).Render(g.Caption))
		}
		for _, day := range g.Days {
			fmt.Fprintln(w)
			fmt.Fprintln(w, dayHeading(day.DayString))
			for _, ev := range day.Events {
				where := ev.LocationsDisplayText
				if where == "" && ev.Location != nil {
					where = ev.Location.DisplayName
				}
				eventLine(w, interval(ev.TimeIntervalString, ev.Start, ev.End), ev.Subject,
					where, ev.ResponsiblePersonContacts, ev.IsCancelled)
			}
		}
	}
}

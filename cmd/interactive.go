package cmd

import (
	"github.com/EeOneDown/spbuTimetableAPI/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to browse divisions and groups, look up educators, and export timetables interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		return tui.RunTUI(client)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

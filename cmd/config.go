package cmd

import (
	"fmt"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/config"
	"github.com/EeOneDown/spbuTimetableAPI/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage spbuctl configuration",
	Long:  "View or edit your local configuration settings (~/.spbuctl.yaml).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		show, _ := cmd.Flags().GetBool("show")
		if show {
			fmt.Print(tui.DescribeConfig(cfg))
			return nil
		}

		changed := false
		if cmd.Flags().Changed("set-division") {
			cfg.DefaultDivision, _ = cmd.Flags().GetString("set-division")
			changed = true
		}
		if cmd.Flags().Changed("set-lessons") {
			cfg.LessonsType, _ = cmd.Flags().GetString("set-lessons")
			changed = true
		}
		if cmd.Flags().Changed("set-timeout") {
			cfg.TimeoutSeconds, _ = cmd.Flags().GetInt("set-timeout")
			changed = true
		}
		if cmd.Flags().Changed("set-log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("set-log-level")
			changed = true
		}
		if cmd.Flags().Changed("add-group") {
			id, _ := cmd.Flags().GetInt("add-group")
			cfg.AddGroup(id)
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println(tui.RenderAccent("✅ Configuration saved."))
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		client, _, err := newClient()
		if err != nil {
			return err
		}
		return tui.RunConfigTUI(client)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("show", false, "Print the current configuration")
	configCmd.Flags().String("set-division", "", "Set the default study division alias")
	configCmd.Flags().String("set-lessons", "", "Set the lessons filter (All, Primary, Attestation, Final, Unknown)")
	configCmd.Flags().Int("set-timeout", 0, "Set the request timeout in seconds")
	configCmd.Flags().String("set-log-level", "", "Set the log level (debug, info, warn, error, disabled)")
	configCmd.Flags().Int("add-group", 0, "Save a group id for quick access")
}

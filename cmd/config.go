package cmd

import (
	"fmt"

	"github.com/bochkarevko/timetable-bot/pkg/config"
	"github.com/bochkarevko/timetable-bot/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage timetable configuration",
	Long:  "View or edit your sections and the timetable service address (~/.timetable.json).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if show, _ := cmd.Flags().GetBool("show"); show {
			fmt.Printf("Service: %s\n", cfg.BaseURL)
			fmt.Printf("Group: %s\n", cfg.Group)
			fmt.Printf("Algorithms: %s\n", cfg.Algorithms)
			fmt.Printf("Combinatorics: %s\n", cfg.Combinatorics)
			fmt.Printf("Timezone: %s\n", cfg.Timezone)
			return nil
		}

		changed := false
		for flag, field := range map[string]*string{
			"base-url":      &cfg.BaseURL,
			"group":         &cfg.Group,
			"algorithms":    &cfg.Algorithms,
			"combinatorics": &cfg.Combinatorics,
			"timezone":      &cfg.Timezone,
		} {
			if cmd.Flags().Changed(flag) {
				*field, _ = cmd.Flags().GetString(flag)
				changed = true
			}
		}

		// If no flags are given, launch the interactive TUI flow
		if !changed {
			return tui.RunProfileTUI()
		}

		if _, err := cfg.Location(); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Println("✅ Configuration saved")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("base-url", "", "Timetable service address")
	configCmd.Flags().StringP("group", "g", "", "Your group (empty to clear)")
	configCmd.Flags().StringP("algorithms", "a", "", "Your algorithms section (empty to clear)")
	configCmd.Flags().StringP("combinatorics", "k", "", "Your combinatorics section (empty to clear)")
	configCmd.Flags().String("timezone", "", "IANA timezone used for today and exports")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}

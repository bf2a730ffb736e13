package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/bochkarevko/timetable-bot/pkg/config"
	"github.com/bochkarevko/timetable-bot/pkg/timetable"
	"github.com/bochkarevko/timetable-bot/pkg/tui"

	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:   "day [weekday]",
	Short: "Print the lessons of a day",
	Long: `Fetch a day's lessons (today if no day is given), keep the ones for your sections
and print them in the chat message format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		day := ""
		if len(args) == 1 {
			day = strings.ToLower(strings.TrimSpace(args[0]))
		} else {
			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			day = timetable.DayOf(time.Now().In(loc))
		}

		lessons, err := tui.FetchDay(cfg, day, profileFromFlags(cmd, cfg))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), timetable.PrintDay(lessons))
		return nil
	},
}

// addProfileFlags registers the track overrides shared by day, next and export.
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("group", "g", "", "Group (overrides the saved one)")
	cmd.Flags().StringP("algorithms", "a", "", "Algorithms section (overrides the saved one)")
	cmd.Flags().StringP("combinatorics", "k", "", "Combinatorics section (overrides the saved one)")
}

// profileFromFlags starts from the saved profile and applies any flag that was set.
// Passing an empty value explicitly clears that track.
func profileFromFlags(cmd *cobra.Command, cfg *config.AppConfig) timetable.Profile {
	group, algorithms, combinatorics := cfg.Group, cfg.Algorithms, cfg.Combinatorics

	if cmd.Flags().Changed("group") {
		group, _ = cmd.Flags().GetString("group")
	}
	if cmd.Flags().Changed("algorithms") {
		algorithms, _ = cmd.Flags().GetString("algorithms")
	}
	if cmd.Flags().Changed("combinatorics") {
		combinatorics, _ = cmd.Flags().GetString("combinatorics")
	}

	return timetable.NewProfile(group, algorithms, combinatorics)
}

func init() {
	rootCmd.AddCommand(dayCmd)
	addProfileFlags(dayCmd)
}

package cmd

import (
	"fmt"
	"time"

	"github.com/bochkarevko/timetable-bot/pkg/config"
	"github.com/bochkarevko/timetable-bot/pkg/timetable"
	"github.com/bochkarevko/timetable-bot/pkg/tui"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print today's next lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		now := time.Now().In(loc)
		if at, _ := cmd.Flags().GetString("at"); at != "" {
			parsed, err := time.Parse("15:04", at)
			if err != nil {
				return fmt.Errorf("invalid --at value %q, expected HH:MM", at)
			}
			now = parsed
		}

		lessons, err := tui.FetchDay(cfg, timetable.DayOf(time.Now().In(loc)), profileFromFlags(cmd, cfg))
		if err != nil {
			return err
		}

		next, ok := timetable.NextLesson(lessons, now)
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("Сегодня больше нет пар"))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), next.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
	addProfileFlags(nextCmd)
	nextCmd.Flags().String("at", "", "Reference time (HH:MM), defaults to now")
}

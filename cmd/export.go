package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bochkarevko/timetable-bot/pkg/config"
	"github.com/bochkarevko/timetable-bot/pkg/exporter"
	"github.com/bochkarevko/timetable-bot/pkg/timetable"
	"github.com/bochkarevko/timetable-bot/pkg/tui"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a day's lessons to an ICS file",
	Long:  `Fetch the lessons for the weekday of --date and write them as calendar events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		date := time.Now().In(loc)
		if dateFlag != "" {
			date, err = time.ParseInLocation("2006-01-02", dateFlag, loc)
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", dateFlag, err)
			}
		}

		lessons, err := tui.FetchDay(cfg, timetable.DayOf(date), profileFromFlags(cmd, cfg))
		if err != nil {
			return err
		}

		if len(lessons) == 0 {
			return fmt.Errorf("no lessons on %s", date.Format("2006-01-02"))
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(lessons, date, loc, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d lessons to %s\n", len(lessons), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addProfileFlags(exportCmd)
	exportCmd.Flags().StringP("date", "d", "", "Date to export (format: YYYY-MM-DD), defaults to today")
	exportCmd.Flags().StringP("output", "o", "timetable.ics", "Output file path")
}

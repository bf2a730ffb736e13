package cmd

import (
	"fmt"
	"os"

	"github.com/bochkarevko/timetable-bot/pkg/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "timetable",
	Short: "Daily class schedule for your groups",
	Long: `timetable fetches a day's lessons from the timetable service, keeps the ones
for your group / algorithms / combinatorics sections and prints them as a message.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnv()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

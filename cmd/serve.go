package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bochkarevko/timetable-bot/pkg/config"
	"github.com/bochkarevko/timetable-bot/pkg/server"
	"github.com/bochkarevko/timetable-bot/pkg/timetable"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rendered days over HTTP",
	Long: `Start an HTTP server answering GET /timetable/:day and GET /timetable/:day/next
with the rendered message. Sections are passed as query parameters.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		e := server.New(timetable.NewClient(cfg.BaseURL), loc, time.Now)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = e.Shutdown(shutdownCtx)
		}()

		e.Logger.Infof("proxying %s", cfg.BaseURL)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}

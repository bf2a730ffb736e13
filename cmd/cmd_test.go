package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bochkarevko/timetable-bot/pkg/config"
)

const mockTimetable = `[
	{
		"name": "Math+Stats",
		"type": "lecture",
		"link": "http://x",
		"password": null,
		"group": null,
		"algorithms": "A1",
		"combinatorics": null,
		"start_m": 540,
		"end_m": 600
	},
	{
		"name": "Graphs",
		"type": "practice",
		"link": "http://y",
		"start_m": 610,
		"end_m": 700
	}
]`

// newTimetableServer answers every request with body and points the config at it.
func newTimetableServer(t *testing.T, status int, body string) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)
	t.Setenv(config.BaseURLEnv, server.URL)
}

// runCommand executes the root command and returns what it wrote to stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

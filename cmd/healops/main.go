// Command healops runs the HealOps incident resolution core.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sourabhkumawat/healops/pkg/version"
)

func main() {
	root := &cobra.Command{
		Use:           "healops",
		Short:         "Autonomous incident resolution core",
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newProduceCmd(), newCleanupServiceCmd())

	configureLogging()

	if err := root.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// configureLogging installs the process-wide JSON logger. LOG_LEVEL accepts
// debug, info, warn, error; anything else means info.
func configureLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler).With("app", version.AppName, "commit", version.GitCommit))
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kls-dev/kls/internal/server"
)

func RunServe(cmd *cobra.Command, args []string) error {
	verbosity, err := cmd.Flags().GetInt("verbosity")
	if err != nil {
		return fmt.Errorf("failed to read --verbosity flag: %w", err)
	}
	logFile, err := cmd.Flags().GetString("log")
	if err != nil {
		return fmt.Errorf("failed to read --log flag: %w", err)
	}

	var logPath *string
	if logFile != "" {
		logPath = &logFile
	}

	return server.New(cmd.Root().Version, verbosity, logPath).Run()
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"dbug/internal/interfaces/cli/migrate"
	"dbug/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dbug",
		Short: "dbug - employee defect and idea intake service",
		Long:  `dbug verifies employee emails with one-time passcodes and accepts defect and idea tickets with attachments.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

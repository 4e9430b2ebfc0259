package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/codeshift/internal/cli"
	"codeberg.org/snonux/codeshift/internal/models"
	"codeberg.org/snonux/codeshift/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	// Handle --history flag
	if cmd.Flags().Changed("history") {
		return proc.ShowHistory(flags.History)
	}

	// Handle batch processing
	if flags.BatchFile != "" {
		return proc.ProcessBatch()
	}

	if len(args) > 0 {
		// Convert a single file ("-" reads stdin)
		return proc.ConvertFile(args[0])
	}

	// No input provided - launch GUI mode by default
	return proc.RunGUIMode()
}

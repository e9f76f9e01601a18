package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vn-requirements-nlp/Translate-FR-NFR/internal/cli"
	"github.com/vn-requirements-nlp/Translate-FR-NFR/internal/models"
	"github.com/vn-requirements-nlp/Translate-FR-NFR/internal/processor"
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
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	if err := flags.Validate(); err != nil {
		return err
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListChatModels()
	}

	// Create processor
	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	if err := proc.Run(context.Background()); err != nil {
		return err
	}

	fmt.Printf("\nDone! Vietnamese dataset saved to: %s\n", flags.OutputFile)
	return nil
}

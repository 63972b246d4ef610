package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/lugha/internal/archive"
	"codeberg.org/snonux/lugha/internal/cli"
	"codeberg.org/snonux/lugha/internal/config"
	"codeberg.org/snonux/lugha/internal/models"
	"codeberg.org/snonux/lugha/internal/processor"
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
	// Handle --archive-history flag
	if flags.ArchiveHistory {
		dbPath := viper.GetString("history.path")
		if dbPath == "" {
			dbPath = "lugha_history.db"
		}
		if err := archive.ArchiveHistory(dbPath); err != nil {
			return fmt.Errorf("failed to archive history: %w", err)
		}
		fmt.Println("History archived")
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(config.OpenAIKey())
		return lister.ListTranslationModels()
	}

	// Create processor
	proc := processor.NewProcessor(flags)

	// Handle --list-languages flag
	if flags.ListLanguages {
		return proc.ListLanguages()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Handle --serve flag
	if flags.Serve {
		return proc.RunServer(ctx)
	}

	// Handle batch processing
	if flags.BatchFile != "" {
		return proc.ProcessBatch(ctx)
	}

	// Process single word
	if len(args) > 0 {
		return proc.ProcessSingleWord(ctx, args[0])
	}

	return cmd.Help()
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/lugha/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lugha [word]",
		Short: "English to Swahili, Haya and Sukuma word translator",
		Long: `lugha resolves English words to Swahili, Haya or Sukuma.

It cascades through a CSV dictionary (exact, case-insensitive, partial and
fuzzy matching), a built-in fallback vocabulary and - for Swahili - a remote
translation service with retry and caching.

Examples:
  lugha book                      # Translate "book" to Swahili
  lugha --language haya water     # Translate "water" to Haya
  lugha --batch words.txt         # Resolve every word in the file
  lugha --serve                   # Run the HTTP API`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.lugha.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.TargetLanguage, "language", "l", flags.TargetLanguage, "Target language (swahili, haya or sukuma)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Resolve words from file (one per line)")
	cmd.Flags().StringVar(&flags.ReportFile, "report", flags.ReportFile, "CSV report path for batch mode")
	cmd.Flags().BoolVar(&flags.ListLanguages, "list-languages", false, "List supported target languages with dictionary coverage")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.ArchiveHistory, "archive-history", false, "Archive the translation history database and exit")
	cmd.Flags().BoolVar(&flags.NoRemote, "no-remote", false, "Disable the remote translation fallback")

	// Server flags
	cmd.Flags().BoolVar(&flags.Serve, "serve", false, "Run the HTTP API server")
	cmd.Flags().StringVar(&flags.Listen, "listen", flags.Listen, "HTTP listen address for --serve")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", "", "OpenAI chat model for the remote translation fallback")

	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("server.listen", cmd.Flags().Lookup("listen"))
	viper.BindPFlag("openai.model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".lugha" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lugha")
	}

	// Environment variables
	viper.SetEnvPrefix("LUGHA")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "lugha [word]" {
		t.Errorf("Use = %q, want 'lugha [word]'", cmd.Use)
	}
	if cmd.Version == "" {
		t.Error("Expected a version to be set")
	}

	for _, name := range []string{
		"language", "batch", "report", "list-languages", "list-models",
		"archive-history", "no-remote", "serve", "listen", "openai-model", "log-level",
	} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Missing flag --%s", name)
		}
	}
	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("Missing persistent flag --config")
	}
}

func TestCreateRootCommand_ParsesFlags(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	cmd.SetArgs([]string{"--language", "haya", "--no-remote", "water"})
	cmd.RunE = func(c *cobra.Command, args []string) error { return nil }

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if flags.TargetLanguage != "haya" {
		t.Errorf("TargetLanguage = %q, want haya", flags.TargetLanguage)
	}
	if !flags.NoRemote {
		t.Error("Expected NoRemote to be set")
	}
}

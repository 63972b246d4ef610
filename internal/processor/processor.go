package processor

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"codeberg.org/snonux/lugha/internal/audio"
	"codeberg.org/snonux/lugha/internal/batch"
	"codeberg.org/snonux/lugha/internal/cli"
	"codeberg.org/snonux/lugha/internal/config"
	"codeberg.org/snonux/lugha/internal/dictionary"
	"codeberg.org/snonux/lugha/internal/history"
	"codeberg.org/snonux/lugha/internal/language"
	"codeberg.org/snonux/lugha/internal/observability"
	"codeberg.org/snonux/lugha/internal/resolver"
	"codeberg.org/snonux/lugha/internal/server"
	"codeberg.org/snonux/lugha/internal/translation"
)

// Processor handles the main word resolution logic.
type Processor struct {
	flags *cli.Flags
	cfg   *config.Config
	log   *slog.Logger
	table *dictionary.Table
	res   *resolver.Resolver
}

// NewProcessor creates a new word processor. A missing or broken dictionary
// file degrades to an empty table; the fallback dictionary still works.
func NewProcessor(flags *cli.Flags) *Processor {
	cfg := config.Load()
	log := observability.NewLogger(cfg.LogLevel, flags.Serve)

	table, err := dictionary.Load(cfg.DictionaryFiles, log)
	if err != nil {
		log.Error("failed to load dictionary", "error", err)
		table = dictionary.NewTable(nil, nil)
	}

	var remote resolver.Remote
	if !flags.NoRemote {
		backend := translation.NewOpenAIBackend(config.OpenAIKey(), cfg.OpenAIModel)
		remote = translation.NewClient(backend, translation.NewCache(), translation.Options{
			MaxRetries:     cfg.MaxRetries,
			RetryDelayMin:  cfg.RetryDelayMin,
			RetryDelayMax:  cfg.RetryDelayMax,
			RateLimitDelay: cfg.RateLimitDelay,
		}, log)
	}

	return &Processor{
		flags: flags,
		cfg:   cfg,
		log:   log,
		table: table,
		res:   resolver.New(table, dictionary.DefaultFallback(), remote, log),
	}
}

// ProcessSingleWord resolves one word and prints the outcome.
func (p *Processor) ProcessSingleWord(ctx context.Context, word string) error {
	if err := resolver.ValidateWord(word); err != nil {
		return err
	}
	target, err := language.Parse(p.flags.TargetLanguage)
	if err != nil {
		return err
	}

	result, err := p.res.ResolveWord(ctx, word, target)
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}

// ProcessBatch resolves every word from the batch file and writes a CSV
// report.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	words, err := batch.ReadWordFile(p.flags.BatchFile)
	if err != nil {
		return err
	}
	target, err := language.Parse(p.flags.TargetLanguage)
	if err != nil {
		return err
	}

	results := make([]resolver.Result, 0, len(words))
	resolved := 0
	for i, word := range words {
		fmt.Printf("Resolving %d/%d: %s\n", i+1, len(words), word)
		if err := resolver.ValidateWord(word); err != nil {
			fmt.Fprintf(os.Stderr, "Skipping '%s': %v\n", word, err)
			continue
		}
		result, err := p.res.ResolveWord(ctx, word, target)
		if err != nil {
			return err
		}
		if result.Success {
			resolved++
		}
		results = append(results, result)
	}

	if err := batch.WriteReport(p.flags.ReportFile, results); err != nil {
		return err
	}

	fmt.Printf("\n=== Batch Summary ===\n")
	fmt.Printf("Total words: %d\n", len(words))
	fmt.Printf("Resolved: %d\n", resolved)
	fmt.Printf("Unresolved: %d\n", len(results)-resolved)
	fmt.Printf("Report written to: %s\n", p.flags.ReportFile)
	return nil
}

// ListLanguages prints the supported target languages with their dictionary
// coverage.
func (p *Processor) ListLanguages() error {
	fmt.Println("Supported target languages:")
	for _, l := range language.Targets() {
		remote := ""
		if language.IsRemoteEligible(l) {
			remote = ", remote fallback"
		}
		fmt.Printf("  %-8s %s (%d dictionary entries%s)\n",
			l.String(), l.DisplayName(), p.table.CountForLanguage(l), remote)
	}
	return nil
}

// RunServer runs the HTTP API until ctx is canceled.
func (p *Processor) RunServer(ctx context.Context) error {
	store, err := history.Open(p.cfg.HistoryPath)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	var transcriber audio.Transcriber
	if key := config.OpenAIKey(); key != "" {
		transcriberCfg := audio.DefaultConfig()
		transcriberCfg.OpenAIKey = key
		transcriberCfg.Language = p.cfg.TranscribeLanguage
		transcriber, err = audio.NewTranscriber(transcriberCfg)
		if err != nil {
			p.log.Warn("transcription disabled", "error", err)
		}
	} else {
		p.log.Warn("transcription disabled: no OpenAI API key")
	}

	// The --listen flag is bound to server.listen, so the config value
	// already reflects it.
	srv := server.New(p.res, p.table, store, transcriber, p.cfg.StaticDir, p.log)
	return srv.ListenAndServe(ctx, p.cfg.Listen, p.cfg.ReadTimeout, p.cfg.WriteTimeout, p.cfg.ShutdownTimeout)
}

func printResult(result resolver.Result) {
	if result.Success {
		fmt.Printf("%s -> %s [%s, %s]\n",
			result.Input, result.Translation, result.LanguageName, result.Method)
		return
	}
	fmt.Fprintf(os.Stderr, "No translation for '%s': %s\n", result.Input, result.Error)
}

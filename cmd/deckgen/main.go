// Package main is the deckgen CLI entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/deckgen/internal/config"
	"github.com/hyperjump/deckgen/internal/deck"
	"github.com/hyperjump/deckgen/internal/llm"
	"github.com/hyperjump/deckgen/internal/models"
	"github.com/hyperjump/deckgen/internal/pipeline"
	"github.com/hyperjump/deckgen/internal/server"
	"github.com/hyperjump/deckgen/internal/watcher"
	"github.com/hyperjump/deckgen/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/deckgen/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used,
// so that "deckgen server" from the project dir uses the project's config (including debug).
// Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "generate":
		runGenerate()
	case "watch":
		runWatch()
	case "version", "--version", "-v":
		fmt.Printf("deckgen version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// newSummarizer builds the model client. When the credential is missing the
// pipeline still works: every document goes through the local fallback, so a
// client construction failure degrades to an always-failing summarizer rather
// than aborting startup.
func newSummarizer(cfg *config.Config, logger *zap.Logger) llm.Summarizer {
	client, err := llm.NewClient(cfg.LLM, llm.WithLogger(logger))
	if err != nil {
		logger.Warn("model client unavailable, documents will be summarized locally", zap.Error(err))
		return unavailableSummarizer{err: err}
	}
	return client
}

type unavailableSummarizer struct{ err error }

func (u unavailableSummarizer) Summarize(ctx context.Context, text, designPrompt, model string) (string, error) {
	return "", u.err
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (model calls, parsing, watcher events)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	gen := pipeline.NewGenerator(newSummarizer(cfg, logger), cfg, logger)
	srv := server.NewServer(gen, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runGenerate() {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	designPrompt := fs.String("prompt", "", "design instructions (colors, font, footer, emoji)")
	model := fs.String("model", "", "model name from the allowed list (default from config)")
	output := fs.String("output", "", "output file path (default: deck-<id>.pptx in the current directory)")
	format := fs.String("format", "pptx", "output format: pptx or pdf")
	logoPath := fs.String("logo", "", "PNG logo placed on every content slide")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: deckgen generate [flags] <file>...")
		os.Exit(1)
	}
	if *format != "pptx" && *format != "pdf" {
		fmt.Printf("Unknown format %q; use pptx or pdf\n", *format)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var docs []models.Document
	for _, path := range fs.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", path, err)
			os.Exit(1)
		}
		docs = append(docs, models.NewDocument(path, data))
	}

	var logo []byte
	if *logoPath != "" {
		logo, err = os.ReadFile(*logoPath)
		if err != nil {
			fmt.Printf("Failed to read logo: %v\n", err)
			os.Exit(1)
		}
	}

	gen := pipeline.NewGenerator(newSummarizer(cfg, logger), cfg, logger)
	result, err := gen.Generate(context.Background(), docs, *designPrompt, *model)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoSlides) {
			fmt.Fprintln(os.Stderr, "No slides could be generated from the supplied files")
		} else {
			fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
		}
		os.Exit(1)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", w.File, w.Message)
	}

	artifact, outPath, err := assembleArtifact(result, *format, *output, logo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, artifact, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d slide(s))\n", outPath, len(result.Slides))
}

func assembleArtifact(result *models.GenerateResult, format, outPath string, logo []byte) ([]byte, string, error) {
	if outPath == "" {
		outPath = fmt.Sprintf("deck-%s.%s", uuid.New().String(), format)
	}
	if format == "pdf" {
		artifact, err := deck.BuildTextPDF(result.SourceTexts, result.SourceNames)
		return artifact, outPath, err
	}
	artifact, err := deck.BuildPPTX(result.Slides, result.Style, logo)
	return artifact, outPath, err
}

func runWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	designPrompt := fs.String("prompt", "", "design instructions applied to every generated deck")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if len(cfg.Watch.Directories) == 0 {
		fmt.Println("No watch directories configured (watch.directories)")
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.Watch.OutputDir, 0755); err != nil {
		fmt.Printf("Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	gen := pipeline.NewGenerator(newSummarizer(cfg, logger), cfg, logger)
	prompt := *designPrompt

	watchOpts := []watcher.WatcherOption{}
	if debugMode {
		watchOpts = append(watchOpts, watcher.WithLogger(logger))
	}
	watchSvc := watcher.NewWatcher(
		cfg.Watch.Directories,
		cfg.Watch.Extensions,
		cfg.Watch.RecursiveOrDefault(),
		func(path string) {
			generateFromFile(gen, cfg, logger, path, prompt)
		},
		watchOpts...,
	)

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if err := watchSvc.Start(watchCtx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	watchSvc.SyncExistingFiles()
	logger.Info("Watching for documents",
		zap.Strings("directories", watchSvc.Directories()),
		zap.String("output_dir", cfg.Watch.OutputDir))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchSvc.Stop()
}

// generateFromFile turns one dropped document into a deck next to the others
// in the output directory. Failures are logged, never fatal; the watcher keeps
// running.
func generateFromFile(gen *pipeline.Generator, cfg *config.Config, logger *zap.Logger, path, designPrompt string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("watch read file failed", zap.String("path", path), zap.Error(err))
		return
	}
	docs := []models.Document{models.NewDocument(path, data)}
	result, err := gen.Generate(context.Background(), docs, designPrompt, "")
	if err != nil {
		logger.Warn("watch generation failed", zap.String("path", path), zap.Error(err))
		return
	}
	for _, w := range result.Warnings {
		logger.Warn("watch generation warning", zap.String("file", w.File), zap.String("message", w.Message))
	}

	artifact, err := deck.BuildPPTX(result.Slides, result.Style, nil)
	if err != nil {
		logger.Warn("watch deck assembly failed", zap.String("path", path), zap.Error(err))
		return
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(cfg.Watch.OutputDir, base+".pptx")
	if err := os.WriteFile(outPath, artifact, 0644); err != nil {
		logger.Warn("watch write deck failed", zap.String("path", outPath), zap.Error(err))
		return
	}
	logger.Info("deck generated", zap.String("source", path), zap.String("deck", outPath),
		zap.Int("slides", len(result.Slides)), zap.Bool("fallback", result.FallbackUsed))
}

func printUsage() {
	fmt.Println(`deckgen - Turn documents into presentation decks

Usage:
  deckgen server [flags]              Start the HTTP server
  deckgen generate [flags] <file>...  Generate a deck from files
  deckgen watch [flags]               Watch drop directories and generate decks
  deckgen version                     Show version
  deckgen help                        Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/deckgen/config.yaml)
  --debug            Enable debug logging (model calls, parsing, watcher events)

Generate Flags:
  --config string    Config file path
  --prompt string    Design instructions (colors, font, footer, emoji)
  --model string     Model name from the allowed list (default from config)
  --output string    Output file path (default: deck-<id>.pptx)
  --format string    Output format: pptx or pdf (default: pptx)
  --logo string      PNG logo placed on every content slide

Watch Flags:
  --config string    Config file path
  --prompt string    Design instructions applied to every generated deck
  --debug            Enable debug logging

Examples:
  deckgen server
  deckgen generate --prompt "dark blue background, Calibri, large font" report.pdf
  deckgen generate --format pdf notes.docx
  deckgen watch --prompt "footer: Quarterly Review"`)
}

// Package cmd wires the command-line surface to the scan and generation
// pipeline.
package cmd

import (
	"fmt"
	"os"

	"github.com/Cyclone1070/yaget/internal/config"
	"github.com/Cyclone1070/yaget/internal/env"
	"github.com/Cyclone1070/yaget/internal/fsutil"
	"github.com/Cyclone1070/yaget/internal/logger"
	"github.com/Cyclone1070/yaget/internal/present"
	"github.com/Cyclone1070/yaget/internal/provider/gemini"
	"github.com/Cyclone1070/yaget/internal/runner"
	"github.com/Cyclone1070/yaget/internal/scan"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for yaget.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yaget <project-directory>",
		Short: "Scan project files for TODO annotations and generate code suggestions",
		Long: `yaget walks a project tree for TODO/ENDTODO annotation markers, captures a
bounded context window around each marker, and asks Gemini for an
implementation suggestion per annotation.

Files matching rules in a .yagetignore file at the project root are skipped.
Individual file or generation failures never abort the run.`,
		Version:      Version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0])
		},
	}

	registerScanFlags(cmd)
	cmd.Flags().String("env-file", "", "path to an env file holding GEMINI_API_KEY")
	cmd.Flags().Int("concurrency", 0, "maximum in-flight generation requests")
	cmd.Flags().String("model", "", "Gemini model to use")
	cmd.Flags().Bool("show-prompts", false, "print the prompt sent for each annotation")

	cmd.AddCommand(NewScanCommand())

	return cmd
}

// registerScanFlags adds the flags shared by the root and scan commands.
func registerScanFlags(cmd *cobra.Command) {
	cmd.Flags().Int("before-lines", 0, "lines of context captured before each marker")
	cmd.Flags().Int("max-lines-after", 0, "maximum lines examined after each marker")
	cmd.Flags().StringSlice("extensions", nil, "file suffixes to scan (e.g. .py,.go)")
	cmd.Flags().Bool("legacy-markers", false, "recognize markers by substring instead of comment introducer")
	cmd.Flags().Bool("respect-gitignore", false, "also exclude paths matched by .gitignore")
	cmd.Flags().String("profile", "", "apply a named profile from the config file")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().Bool("no-color", false, "disable colored output")
}

// resolveConfig loads the dotfile config and applies flag overrides.
// Flags win over the config file; the config file wins over defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("profile") {
		name, _ := flags.GetString("profile")
		if err := cfg.ApplyProfile(name); err != nil {
			return nil, err
		}
	}
	if flags.Changed("before-lines") {
		cfg.Scan.BeforeLines, _ = flags.GetInt("before-lines")
	}
	if flags.Changed("max-lines-after") {
		cfg.Scan.MaxLinesAfter, _ = flags.GetInt("max-lines-after")
	}
	if flags.Changed("extensions") {
		cfg.Scan.Extensions, _ = flags.GetStringSlice("extensions")
	}
	if flags.Changed("legacy-markers") {
		cfg.Scan.LegacyMarkers, _ = flags.GetBool("legacy-markers")
	}
	if flags.Changed("respect-gitignore") {
		cfg.Scan.RespectGitignore, _ = flags.GetBool("respect-gitignore")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("concurrency") {
		cfg.Generation.Concurrency, _ = flags.GetInt("concurrency")
	}
	if flags.Changed("model") {
		cfg.Generation.Model, _ = flags.GetString("model")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		color.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func scanOptions(cfg *config.Config) scan.Options {
	return scan.Options{
		Extensions:       cfg.Scan.Extensions,
		BeforeLines:      cfg.Scan.BeforeLines,
		MaxLinesAfter:    cfg.Scan.MaxLinesAfter,
		LegacyMarkers:    cfg.Scan.LegacyMarkers,
		RespectGitignore: cfg.Scan.RespectGitignore,
	}
}

// runGenerate executes the full pipeline: scan, generate, present.
// Missing credentials or an unusable root are fatal; per-file and per-unit
// failures are reported and skipped.
func runGenerate(cmd *cobra.Command, projectDir string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(os.Stderr, cfg.Logging.Level)

	envFile, _ := cmd.Flags().GetString("env-file")
	apiKey, err := env.LoadAPIKey(envFile)
	if err != nil {
		return err
	}

	genaiClient, err := genai.NewClient(cmd.Context(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	backend := gemini.New(gemini.NewRealClient(genaiClient), cfg.Generation.Model)

	renderer, err := present.NewGlamourRenderer()
	if err != nil {
		log.Warnf("markdown rendering unavailable: %v", err)
		renderer = nil
	}
	showPrompts, _ := cmd.Flags().GetBool("show-prompts")
	sink := present.NewConsole(cmd.OutOrStdout(), renderer, showPrompts)

	scanner := scan.NewScanner(fsutil.NewOSFileSystem(), log, scanOptions(cfg))
	run := runner.New(scanner, backend, sink, log, cfg.Generation.Concurrency)

	return run.Run(cmd.Context(), projectDir)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"slidemerge/internal/config"
	"slidemerge/internal/logging"
	"slidemerge/internal/pipeline"
)

const (
	defaultTemplate = "./template.html"
	defaultSlides   = "./slides"
	defaultOutput   = "./index.html"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "slidemerge",
	Short: "Merge HTML slide fragments into a reveal.js presentation",
	Long: `slidemerge assembles independently written HTML slide fragments into one
presentation by inserting them into the element with id "slides" of a template.

Fragments directly inside the slides directory and fragments inside each
subdirectory each form one horizontal slide; every fragment becomes a
vertical slide within it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge-slides [template] [slides-path] [output]",
	Short: "Merges slides and template into an output presentation.",
	Long: `Merges slides and template into an output presentation.

Defaults:
  template     ./template.html
  slides-path  ./slides
  output       ./index.html`,
	Args: cobra.MaximumNArgs(3),
	RunE: runMerge,
}

var watchCmd = &cobra.Command{
	Use:   "watch [template] [slides-path] [output]",
	Short: "Merges slides and template into an output presentation in watch mode.",
	Long: `Watches the slides directory and rebuilds the presentation on every change.

Every notification triggers one full rebuild. Failed rebuilds are logged and
watching continues unless watch.exit_on_error is set in the config file.`,
	Args: cobra.MaximumNArgs(3),
	RunE: runWatch,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")

	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// resolvePaths fills unset positional arguments with their defaults.
func resolvePaths(args []string) pipeline.Paths {
	p := pipeline.Paths{
		Template: defaultTemplate,
		Slides:   defaultSlides,
		Output:   defaultOutput,
	}
	if len(args) > 0 {
		p.Template = args[0]
	}
	if len(args) > 1 {
		p.Slides = args[1]
	}
	if len(args) > 2 {
		p.Output = args[2]
	}
	return p
}

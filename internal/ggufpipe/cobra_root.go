package ggufpipe

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ggufpipe/internal/common/fsutil"
	"ggufpipe/internal/config"
)

const version = "0.1.0"

// buildRootCmdWith constructs the command tree over the given settings and
// invocation options.
func buildRootCmdWith(cfg *Settings, opts *Options) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "ggufpipe",
		Short:         "Download a Hugging Face model, convert it to GGUF, and smoke-test it",
		Long:          "ggufpipe downloads model weights from the Hugging Face hub, syncs a llama.cpp checkout, converts the weights to GGUF via convert_hf_to_gguf.py, and can run the result once through llama-cli.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Model == "" {
				return usageError{msg: "--model is required (alias or fully-qualified hub id)"}
			}
			if opts.Verbose {
				SetLogLevel("debug")
			} else {
				SetLogLevel(cfg.LogLvl)
			}
			if configFile != "" {
				fc, err := config.Load(configFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				applyFileConfig(cfg, fc, cmd.Flags().Changed)
			}
			var err error
			if cfg.ModelsDir, err = fsutil.ExpandHome(cfg.ModelsDir); err != nil {
				return err
			}
			if cfg.LlamaDir, err = fsutil.ExpandHome(cfg.LlamaDir); err != nil {
				return err
			}
			p := New(*opts, *cfg)
			return fnRunPipeline(p, cmd.Context())
		},
	}

	f := root.Flags()
	f.StringVar(&opts.Model, "model", "", "Model alias (e.g. 'llama-3b') or fully-qualified Hugging Face model name")
	f.BoolVar(&opts.SkipDownload, "skip-download", false, "Skip downloading the model if it already exists")
	f.BoolVar(&opts.SkipConversion, "skip-conversion", false, "Skip GGUF conversion if it already exists")
	f.BoolVar(&opts.RunModel, "run-model", false, "Run the model after conversion for testing")
	f.BoolVar(&opts.Verbose, "verbose", false, "Display verbose output during model inference")
	f.StringVar(&configFile, "config", "", "Optional config file (yaml/json/toml)")
	f.StringVar(&cfg.ModelsDir, "models-dir", cfg.ModelsDir, "Directory holding downloaded models (default ./models)")
	f.StringVar(&cfg.LlamaDir, "llama-dir", cfg.LlamaDir, "llama.cpp checkout directory (default ./llama.cpp)")
	f.StringVar(&cfg.RepoURL, "repo-url", cfg.RepoURL, "llama.cpp repository URL")
	f.StringVar(&cfg.Branch, "branch", cfg.Branch, "llama.cpp branch to check out")
	f.StringVar(&cfg.HubEndpoint, "hub-endpoint", cfg.HubEndpoint, "Hugging Face hub endpoint override")
	f.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "Prompt used for the smoke-test run")
	f.IntVar(&cfg.CtxSize, "ctx-size", cfg.CtxSize, "Context size passed to llama-cli")
	f.StringVar(&cfg.LogLvl, "log-level", cfg.LogLvl, "Log level: debug|info|warn|error")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the ggufpipe version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ggufpipe "+version)
		},
	})

	return root
}

// MainWithArgs runs the CLI with explicit args and returns an exit code:
// 0 success, 1 pipeline error, 2 usage error.
func MainWithArgs(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := defaultSettings()
	opts := Options{}
	root := buildRootCmdWith(&cfg, &opts)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		if isUsageError(err) {
			return 2
		}
		return 1
	}
	return 0
}

// Main returns an exit code for use by cmd/ggufpipe.
func Main() int { return MainWithArgs(os.Args[1:]) }

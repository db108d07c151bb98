package ggufpipe

import (
	"context"
	"fmt"
	"os"

	"ggufpipe/internal/hub"
)

// Options control a single pipeline invocation.
type Options struct {
	Model          string
	SkipDownload   bool
	SkipConversion bool
	RunModel       bool
	Verbose        bool
}

// Settings are the tunable defaults behind a run, filled from env vars,
// an optional config file, and flags.
type Settings struct {
	BaseDir          string
	ModelsDir        string
	LlamaDir         string
	RepoURL          string
	Branch           string
	HubEndpoint      string
	Prompt           string
	CtxSize          int
	DefaultGPULayers int
	LogLvl           string
}

// metadataClient is the hub surface the pipeline needs.
type metadataClient interface {
	GetConfig(ctx context.Context, modelID string) (hub.ModelConfig, error)
}

// Pipeline runs the download → toolchain sync → convert → smoke-test
// sequence for one model. Stages are sequential and each blocks until its
// subprocess exits.
type Pipeline struct {
	opts Options
	cfg  Settings
	hub  metadataClient

	model     string // resolved fully-qualified identifier
	paths     layout
	modelType string
	quant     string
	ggufPath  string
}

// New builds a Pipeline: resolves the model alias, derives the filesystem
// layout, and wires the hub client.
func New(opts Options, cfg Settings) *Pipeline {
	model := resolveModel(opts.Model)
	return &Pipeline{
		opts:  opts,
		cfg:   cfg,
		hub:   hub.NewClient(cfg.HubEndpoint),
		model: model,
		paths: newLayout(cfg.BaseDir, cfg.ModelsDir, cfg.LlamaDir, model),
	}
}

// Model returns the resolved fully-qualified model identifier.
func (p *Pipeline) Model() string { return p.model }

// ArtifactPath returns the converted GGUF location. Empty until metadata has
// been fetched, since the quant method names the file.
func (p *Pipeline) ArtifactPath() string { return p.ggufPath }

// Run executes the full pipeline. Any stage error aborts the run.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := os.MkdirAll(p.paths.ModelsDir, 0o755); err != nil {
		return fmt.Errorf("models dir: %w", err)
	}
	if err := fnFetchMetadata(p, ctx); err != nil {
		return err
	}
	if err := fnDownloadModel(p, ctx); err != nil {
		return err
	}
	fnCheckCheckpoints(p)
	if err := fnSyncToolchain(p, ctx); err != nil {
		return err
	}
	if err := fnConvertModel(p, ctx); err != nil {
		return err
	}
	return fnRunModel(p, ctx)
}

// fetchMetadata queries the hub for config.json and derives the artifact
// path from the quant method. Failures here are fatal: without metadata the
// output artifact cannot be named.
func (p *Pipeline) fetchMetadata(ctx context.Context) error {
	info("Fetching model metadata for %s...", p.model)
	cfg, err := p.hub.GetConfig(ctx, p.model)
	if err != nil {
		return fmt.Errorf("model metadata for %s: %w", p.model, err)
	}
	p.modelType = cfg.Type()
	p.quant = cfg.QuantMethod()
	p.ggufPath = p.paths.artifactPath(p.model, p.quant)
	info("Detected model type: %s, quantization: %s", p.modelType, p.quant)
	return nil
}

// exec runs a stage subprocess through the unified runner. Every stage gets
// TOKENIZERS_PARALLELISM=false to silence the tokenizers fork warning.
func (p *Pipeline) exec(ctx context.Context, c Cmd) error {
	if c.Env == nil {
		c.Env = map[string]string{}
	}
	c.Env["TOKENIZERS_PARALLELISM"] = "false"
	debug("exec: %s %v", c.Path, c.Args)
	return fnRunCmd(ctx, c)
}

package ggufpipe

import (
	"context"
	"fmt"
	"strconv"

	"ggufpipe/internal/common/fsutil"
)

// runModel smoke-tests the converted artifact with llama-cli. The GPU layer
// count comes from the size substring in the model identifier.
func (p *Pipeline) runModel(ctx context.Context) error {
	if !p.opts.RunModel {
		info("Skipping model test run as --run-model is not specified.")
		return nil
	}
	if !fsutil.PathExists(p.ggufPath) {
		return ErrArtifactMissing(p.ggufPath)
	}
	layers := gpuLayersFor(p.model, p.cfg.DefaultGPULayers)
	info("Using %d GPU layers for model: %s", layers, p.model)
	err := p.exec(ctx, Cmd{
		Path: p.paths.llamaBin(),
		Args: []string{
			"-m", p.ggufPath,
			"--n-gpu-layers", strconv.Itoa(layers),
			"--ctx-size", strconv.Itoa(p.cfg.CtxSize),
			"-p", p.cfg.Prompt,
		},
		Stream: p.opts.Verbose,
	})
	if err != nil {
		return fmt.Errorf("run %s: %w", p.ggufPath, err)
	}
	return nil
}

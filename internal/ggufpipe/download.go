package ggufpipe

import (
	"context"
	"fmt"
	"os"

	"ggufpipe/internal/common/fsutil"
)

// downloadModel fetches the weights via huggingface-cli. The stage is
// idempotent by directory existence only: a partial previous download still
// counts as present (huggingface-cli resumes when re-run by hand).
func (p *Pipeline) downloadModel(ctx context.Context) error {
	if p.opts.SkipDownload || fsutil.PathExists(p.paths.SaveDir) {
		info("Model already exists in %s, skipping download.", p.paths.SaveDir)
		return nil
	}
	info("Downloading model %s to %s...", p.model, p.paths.SaveDir)
	if err := os.MkdirAll(p.paths.SaveDir, 0o755); err != nil {
		return fmt.Errorf("save dir: %w", err)
	}
	err := p.exec(ctx, Cmd{
		Path: "huggingface-cli",
		Args: []string{"download", p.model, "--local-dir", p.paths.SaveDir, "--resume-download"},
	})
	if err != nil {
		return fmt.Errorf("download %s: %w", p.model, err)
	}
	info("Model downloaded successfully to %s.", p.paths.SaveDir)
	return nil
}

// checkCheckpoints warns when the save dir holds more than one checkpoint
// file; the converter may need merged weights in that case. Advisory only.
func (p *Pipeline) checkCheckpoints() {
	files, err := fsutil.CheckpointFiles(p.paths.SaveDir)
	if err != nil {
		debug("checkpoint scan: %v", err)
		return
	}
	if len(files) > 1 {
		warn("Multiple model checkpoint files detected. Merging weights may be required.")
	}
}

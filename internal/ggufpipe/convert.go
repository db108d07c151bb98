package ggufpipe

import (
	"context"
	"fmt"

	"ggufpipe/internal/common/fsutil"
)

// convertModel runs convert_hf_to_gguf.py over the save dir. A missing
// converter script is fatal even when the stage would otherwise be skipped;
// it means the toolchain checkout is broken.
func (p *Pipeline) convertModel(ctx context.Context) error {
	script := p.paths.convertScript()
	if !fsutil.PathExists(script) {
		return ErrToolchainIncomplete(script)
	}
	if p.opts.SkipConversion || fsutil.PathExists(p.ggufPath) {
		info("GGUF model already exists at %s, skipping conversion.", p.ggufPath)
		return nil
	}
	info("Converting model to GGUF format with quantization %s...", p.quant)
	err := p.exec(ctx, Cmd{
		Path: "python3",
		Args: []string{script, p.paths.SaveDir, "--outtype", p.quant},
	})
	if err != nil {
		return fmt.Errorf("convert %s: %w", p.model, err)
	}
	info("Conversion completed. GGUF file saved at: %s", p.ggufPath)
	return nil
}

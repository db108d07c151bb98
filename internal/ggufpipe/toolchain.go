package ggufpipe

import (
	"context"
	"fmt"

	"ggufpipe/internal/common/fsutil"
)

// syncToolchain clones or updates the llama.cpp checkout, then checks out
// the configured branch unconditionally so a stale local HEAD cannot pin an
// old converter.
func (p *Pipeline) syncToolchain(ctx context.Context) error {
	if !fsutil.PathExists(p.paths.LlamaDir) {
		info("Cloning llama.cpp repository...")
		if err := p.exec(ctx, Cmd{Path: "git", Args: []string{"clone", p.cfg.RepoURL, p.paths.LlamaDir}}); err != nil {
			return fmt.Errorf("clone %s: %w", p.cfg.RepoURL, err)
		}
	} else {
		info("Updating llama.cpp repository...")
		if err := p.exec(ctx, Cmd{Path: "git", Args: []string{"-C", p.paths.LlamaDir, "pull"}}); err != nil {
			return fmt.Errorf("pull llama.cpp: %w", err)
		}
	}
	info("Checking out %s...", p.cfg.Branch)
	if err := p.exec(ctx, Cmd{Path: "git", Args: []string{"-C", p.paths.LlamaDir, "checkout", p.cfg.Branch}}); err != nil {
		return fmt.Errorf("checkout %s: %w", p.cfg.Branch, err)
	}
	return nil
}

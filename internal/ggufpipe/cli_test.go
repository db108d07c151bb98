package ggufpipe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ggufpipe/internal/config"
)

func withPipelineStub(t *testing.T, stub func(*Pipeline, context.Context) error) func() {
	t.Helper()
	old := fnRunPipeline
	fnRunPipeline = stub
	return func() { fnRunPipeline = old }
}

func TestMainWithArgs_RequiresModel(t *testing.T) {
	cleanup := withPipelineStub(t, func(p *Pipeline, ctx context.Context) error {
		t.Fatal("pipeline should not run without --model")
		return nil
	})
	defer cleanup()
	if code := MainWithArgs(nil); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

func TestMainWithArgs_FlagsReachPipeline(t *testing.T) {
	var got Options
	cleanup := withPipelineStub(t, func(p *Pipeline, ctx context.Context) error {
		got = p.opts
		return nil
	})
	defer cleanup()
	code := MainWithArgs([]string{"--model", "llama-3b", "--skip-download", "--run-model", "--verbose"})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got.Model != "llama-3b" || !got.SkipDownload || got.SkipConversion || !got.RunModel || !got.Verbose {
		t.Fatalf("options = %+v", got)
	}
}

func TestMainWithArgs_PipelineErrorExitsOne(t *testing.T) {
	cleanup := withPipelineStub(t, func(p *Pipeline, ctx context.Context) error {
		return errors.New("conversion failed")
	})
	defer cleanup()
	if code := MainWithArgs([]string{"--model", "m"}); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestMainWithArgs_Version(t *testing.T) {
	if code := MainWithArgs([]string{"version"}); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
}

func TestMainWithArgs_ConfigFile(t *testing.T) {
	var got Settings
	cleanup := withPipelineStub(t, func(p *Pipeline, ctx context.Context) error {
		got = p.cfg
		return nil
	})
	defer cleanup()

	d := t.TempDir()
	cfgPath := filepath.Join(d, "pipe.yaml")
	body := "branch: b3324\nctx_size: 2048\nprompt: hello\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	// flag wins over file for ctx-size; file wins over default for the rest
	code := MainWithArgs([]string{"--model", "m", "--config", cfgPath, "--ctx-size", "512"})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got.Branch != "b3324" || got.Prompt != "hello" {
		t.Fatalf("file config not applied: %+v", got)
	}
	if got.CtxSize != 512 {
		t.Fatalf("flag did not win over file: ctx=%d", got.CtxSize)
	}
}

func TestDefaultSettings_EnvFallbacks(t *testing.T) {
	t.Setenv("GGUFPIPE_BRANCH", "release")
	t.Setenv("GGUFPIPE_CTX_SIZE", "1024")
	s := defaultSettings()
	if s.Branch != "release" || s.CtxSize != 1024 {
		t.Fatalf("env defaults not picked up: %+v", s)
	}
	if s.RepoURL != defaultRepoURL || s.Prompt != defaultPrompt {
		t.Fatalf("built-in defaults wrong: %+v", s)
	}
}

func TestApplyFileConfig(t *testing.T) {
	s := defaultSettings()
	f := config.Config{ModelsDir: "/m", Branch: "dev", CtxSize: 64, DefaultGPULayers: 20}
	changed := func(name string) bool { return name == "branch" }
	applyFileConfig(&s, f, changed)
	if s.ModelsDir != "/m" || s.CtxSize != 64 || s.DefaultGPULayers != 20 {
		t.Fatalf("file values not applied: %+v", s)
	}
	if s.Branch != defaultBranch {
		t.Fatalf("changed flag overridden by file: %q", s.Branch)
	}
}

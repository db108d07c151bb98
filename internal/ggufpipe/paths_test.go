package ggufpipe

import (
	"path/filepath"
	"testing"
)

func TestShortName(t *testing.T) {
	if got := shortName("mlx-community/Llama-3.2-3B-Instruct"); got != "Llama-3.2-3B-Instruct" {
		t.Fatalf("got %q", got)
	}
	if got := shortName("bare-name"); got != "bare-name" {
		t.Fatalf("got %q", got)
	}
}

func TestNewLayout_Defaults(t *testing.T) {
	l := newLayout("/base", "", "", "org/Model-7B")
	if l.ModelsDir != filepath.Join("/base", "models") {
		t.Fatalf("models dir = %q", l.ModelsDir)
	}
	if l.SaveDir != filepath.Join("/base", "models", "Model-7B") {
		t.Fatalf("save dir = %q", l.SaveDir)
	}
	if l.LlamaDir != filepath.Join("/base", "llama.cpp") {
		t.Fatalf("llama dir = %q", l.LlamaDir)
	}
}

func TestNewLayout_Overrides(t *testing.T) {
	l := newLayout("/base", "/weights", "/src/llama.cpp", "org/M")
	if l.SaveDir != filepath.Join("/weights", "M") || l.LlamaDir != "/src/llama.cpp" {
		t.Fatalf("layout = %+v", l)
	}
}

func TestArtifactPath_UppercasesQuant(t *testing.T) {
	l := newLayout("/b", "", "", "org/Model-7B")
	got := l.artifactPath("org/Model-7B", "q4_k_m")
	want := filepath.Join("/b", "models", "Model-7B", "Model-7B-Q4_K_M.gguf")
	if got != want {
		t.Fatalf("artifact path = %q, want %q", got, want)
	}
}

func TestToolchainPaths(t *testing.T) {
	l := newLayout("/b", "", "", "org/M")
	if l.convertScript() != filepath.Join("/b", "llama.cpp", "convert_hf_to_gguf.py") {
		t.Fatalf("convert script = %q", l.convertScript())
	}
	if l.llamaBin() != filepath.Join("/b", "llama.cpp", "build", "bin", "llama-cli") {
		t.Fatalf("llama bin = %q", l.llamaBin())
	}
}

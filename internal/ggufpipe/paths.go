package ggufpipe

import (
	"path/filepath"
	"strings"
)

// layout holds the filesystem locations used by a pipeline run. Everything is
// a deterministic function of the base directory and the model identifier.
type layout struct {
	ModelsDir string // parent of all model save dirs
	SaveDir   string // downloaded weights for this model
	LlamaDir  string // llama.cpp checkout
}

// shortName returns the last '/' segment of a model identifier, e.g.
// "mlx-community/Llama-3.2-3B-Instruct" -> "Llama-3.2-3B-Instruct".
func shortName(model string) string {
	if i := strings.LastIndex(model, "/"); i >= 0 {
		return model[i+1:]
	}
	return model
}

// newLayout derives the run layout. Empty modelsDir/llamaDir fall back to
// "models" and "llama.cpp" under baseDir.
func newLayout(baseDir, modelsDir, llamaDir, model string) layout {
	if modelsDir == "" {
		modelsDir = filepath.Join(baseDir, "models")
	}
	if llamaDir == "" {
		llamaDir = filepath.Join(baseDir, "llama.cpp")
	}
	return layout{
		ModelsDir: modelsDir,
		SaveDir:   filepath.Join(modelsDir, shortName(model)),
		LlamaDir:  llamaDir,
	}
}

// artifactPath is the converted GGUF location:
// <saveDir>/<shortname>-<QUANT>.gguf with the quant method upper-cased.
func (l layout) artifactPath(model, quant string) string {
	return filepath.Join(l.SaveDir, shortName(model)+"-"+strings.ToUpper(quant)+".gguf")
}

// convertScript is the converter entry point inside the llama.cpp checkout.
func (l layout) convertScript() string {
	return filepath.Join(l.LlamaDir, "convert_hf_to_gguf.py")
}

// llamaBin is the compiled inference binary inside the llama.cpp checkout.
func (l layout) llamaBin() string {
	return filepath.Join(l.LlamaDir, "build", "bin", "llama-cli")
}

package ggufpipe

import (
	"ggufpipe/internal/config"
)

const (
	defaultRepoURL = "https://github.com/ggerganov/llama.cpp"
	defaultBranch  = "master"
	defaultPrompt  = "Write a 1000-word story."
	defaultCtx     = 8192
)

// defaultSettings fills Settings from the environment, with built-in
// fallbacks matching the documented defaults.
func defaultSettings() Settings {
	return Settings{
		BaseDir:     ".",
		ModelsDir:   envStr("GGUFPIPE_MODELS_DIR", ""),
		LlamaDir:    envStr("GGUFPIPE_LLAMA_DIR", ""),
		RepoURL:     envStr("GGUFPIPE_REPO_URL", defaultRepoURL),
		Branch:      envStr("GGUFPIPE_BRANCH", defaultBranch),
		HubEndpoint: envStr("GGUFPIPE_HUB_ENDPOINT", ""),
		Prompt:      envStr("GGUFPIPE_PROMPT", defaultPrompt),
		CtxSize:     envInt("GGUFPIPE_CTX_SIZE", defaultCtx),
		LogLvl:      envStr("GGUFPIPE_LOG_LEVEL", "info"),
	}
}

// applyFileConfig overlays file values onto Settings. Only fields the file
// actually sets are copied; flags still win because the caller skips fields
// whose flags were changed.
func applyFileConfig(s *Settings, f config.Config, changed func(string) bool) {
	if f.ModelsDir != "" && !changed("models-dir") {
		s.ModelsDir = f.ModelsDir
	}
	if f.LlamaDir != "" && !changed("llama-dir") {
		s.LlamaDir = f.LlamaDir
	}
	if f.RepoURL != "" && !changed("repo-url") {
		s.RepoURL = f.RepoURL
	}
	if f.Branch != "" && !changed("branch") {
		s.Branch = f.Branch
	}
	if f.HubEndpoint != "" && !changed("hub-endpoint") {
		s.HubEndpoint = f.HubEndpoint
	}
	if f.Prompt != "" && !changed("prompt") {
		s.Prompt = f.Prompt
	}
	if f.CtxSize != 0 && !changed("ctx-size") {
		s.CtxSize = f.CtxSize
	}
	if f.DefaultGPULayers != 0 {
		s.DefaultGPULayers = f.DefaultGPULayers
	}
}

// usageError distinguishes bad invocations (exit 2) from pipeline failures
// (exit 1).
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func isUsageError(err error) bool {
	_, ok := err.(usageError)
	return ok
}

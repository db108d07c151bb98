package ggufpipe

// modelAliases maps short names to fully-qualified hub identifiers.
// The 8bit/4bit variants are excluded: convert_hf_to_gguf.py cannot handle
// their pre-quantized checkpoints.
var modelAliases = map[string]string{
	"mlx-deepseek-32b": "mlx-community/DeepSeek-R1-Distill-Qwen-32B",
	"llama-3b":         "mlx-community/Llama-3.2-3B-Instruct",
}

// resolveModel maps an alias to its hub identifier, or returns the given
// name verbatim when it is not a known alias.
func resolveModel(name string) string {
	if full, ok := modelAliases[name]; ok {
		return full
	}
	return name
}

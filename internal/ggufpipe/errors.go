package ggufpipe

// toolchainIncompleteError signals a missing converter script in the
// llama.cpp checkout.
type toolchainIncompleteError struct{ path string }

func (e toolchainIncompleteError) Error() string {
	return "converter script not found: " + e.path + " (update the llama.cpp checkout)"
}

// ErrToolchainIncomplete constructs a toolchainIncompleteError.
func ErrToolchainIncomplete(path string) error { return toolchainIncompleteError{path: path} }

// IsToolchainIncomplete reports whether err indicates a missing converter script.
func IsToolchainIncomplete(err error) bool {
	_, ok := err.(toolchainIncompleteError)
	return ok
}

// artifactMissingError signals that the converted GGUF file is absent where
// a stage requires it.
type artifactMissingError struct{ path string }

func (e artifactMissingError) Error() string {
	return "GGUF model not found: " + e.path + " (ensure conversion succeeded)"
}

// ErrArtifactMissing constructs an artifactMissingError.
func ErrArtifactMissing(path string) error { return artifactMissingError{path: path} }

// IsArtifactMissing reports whether err indicates a missing converted artifact.
func IsArtifactMissing(err error) bool {
	_, ok := err.(artifactMissingError)
	return ok
}

package ggufpipe

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorClassifiers(t *testing.T) {
	tc := ErrToolchainIncomplete("/x/convert_hf_to_gguf.py")
	if !IsToolchainIncomplete(tc) || IsArtifactMissing(tc) {
		t.Fatalf("misclassified: %v", tc)
	}
	if !strings.Contains(tc.Error(), "convert_hf_to_gguf.py") {
		t.Fatalf("error lacks path: %v", tc)
	}

	am := ErrArtifactMissing("/m/model-F16.gguf")
	if !IsArtifactMissing(am) || IsToolchainIncomplete(am) {
		t.Fatalf("misclassified: %v", am)
	}

	other := errors.New("boom")
	if IsToolchainIncomplete(other) || IsArtifactMissing(other) {
		t.Fatalf("plain error misclassified")
	}
}

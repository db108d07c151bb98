package ggufpipe

import "strings"

// gpuLayerTable maps a parameter-count substring of the model identifier to
// the number of layers offloaded to the GPU. Order matters: the first entry
// found in the identifier wins, so larger sizes are listed before the
// single-digit ones they contain.
var gpuLayerTable = []struct {
	size   string
	layers int
}{
	{"72B", 40},
	{"32B", 60},
	{"14B", 70},
	{"12B", 70},
	{"7B", 80},
	{"3B", 90},
	{"1B", 100},
}

// defaultGPULayers is used when no size substring matches.
const defaultGPULayers = 30

// gpuLayersFor picks the GPU layer count for a model identifier, falling
// back to def (or defaultGPULayers when def is zero).
func gpuLayersFor(model string, def int) int {
	for _, e := range gpuLayerTable {
		if strings.Contains(model, e.size) {
			return e.layers
		}
	}
	if def > 0 {
		return def
	}
	return defaultGPULayers
}

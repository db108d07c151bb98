package main

import (
	"os"

	"ggufpipe/internal/ggufpipe"
)

func main() {
	os.Exit(ggufpipe.Main())
}

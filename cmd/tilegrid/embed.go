package main

import (
	"embed"
	"io/fs"
)

//go:embed configs
var embeddedConfigs embed.FS

// builtinConfigs returns the embedded configs/ directory as its own root
func builtinConfigs() fs.FS {
	sub, err := fs.Sub(embeddedConfigs, "configs")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	return sub
}

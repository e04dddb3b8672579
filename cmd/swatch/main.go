// Swatch - dominant colour palettes and colour harmonies
//
// Swatch extracts the dominant colours of an image and generates related
// colour sets from harmony rules or fixed presets.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

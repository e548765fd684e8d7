package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// initColor wires fatih/color's global enable switch to the --no-color
// flag, the same on/off toggle the ligneous-gedcom CLI exposes via its
// internal.InitColor helper (not retrieved with this pack, so reauthored
// directly against color's own public API).
func initColor(enabled bool) {
	color.NoColor = !enabled
}

func printInfo(format string, a ...interface{}) {
	fmt.Fprint(os.Stderr, color.CyanString(format, a...))
}

func printSuccess(format string, a ...interface{}) {
	fmt.Fprint(os.Stderr, color.GreenString(format, a...))
}

func printWarning(format string, a ...interface{}) {
	fmt.Fprint(os.Stderr, color.YellowString(format, a...))
}

func printError(format string, a ...interface{}) {
	fmt.Fprint(os.Stderr, color.RedString(format, a...))
}

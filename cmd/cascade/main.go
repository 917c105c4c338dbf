// Command cascade merges seed sets and finds most probable activation paths
// on probability-weighted directed graphs described by YAML job files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// Package main provides the ndarray CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if err := newCLI().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Package main is the entry point for the pokedex terminal client
package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd, release := newRootCmd(buildService)
	err := rootCmd.Execute()
	release()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the kvcache CLI for storing and reading values in
// Redis through the kvcache facade.
package main

import (
	"errors"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errNotFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

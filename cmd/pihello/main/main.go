package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pihello/cmd/pihello"
)

func main() {
	rootCmd := pihello.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pihello.FormatError(err))
		os.Exit(1)
	}
}

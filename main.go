// jsonstore is the CLI for a schema-validated JSON file store.
package main

import (
	"fmt"
	"os"

	"jsonstore/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

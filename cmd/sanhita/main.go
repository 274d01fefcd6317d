// Command sanhita is the entry point for the statute search CLI.
package main

import (
	"os"

	"github.com/sanhita-labs/sanhita-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

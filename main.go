package main

import (
	"fmt"
	"os"

	"menyqr-app/internal/app/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

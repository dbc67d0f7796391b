package main

import (
	"fmt"
	"os"

	"github.com/Philipp01105/labellog/cmd/labellog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

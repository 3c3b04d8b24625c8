package main

import (
	"fmt"
	"os"

	"github.com/calebcase/cryptounit/cmd/cryptounit/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

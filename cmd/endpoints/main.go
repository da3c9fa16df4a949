package main

import (
	"os"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}

package main

import (
	"os"

	"github.com/idilsaglam/doit/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}

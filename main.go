package main

import (
	"os"

	"github.com/scangate/scangate/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}

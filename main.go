package main

import (
	"os"

	"github.com/vipcxj/natsort/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

package main

import (
	"flag"
	"os"

	"simple-stackqueue/src"
)

func main() {
	// parse args
	src.ParseCliArgs()
	// start cli
	os.Exit(src.CliStart(flag.Args()))
}

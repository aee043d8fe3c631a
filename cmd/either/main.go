package main

import (
	"log"
	"os"

	"github.com/funvibe/either/pkg/cli"
)

func main() {
	log.SetFlags(0)          // Disable timestamp in logs
	log.SetOutput(os.Stderr) // Diagnostics go to stderr, results to stdout

	os.Exit(cli.Run(os.Args[1:], os.Stdout, log.Writer()))
}

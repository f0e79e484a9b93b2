// main is the entry point for the gitcrew CLI.
package main

import (
	"github.com/gitcrew/gitcrew/cmd"
	"github.com/gitcrew/gitcrew/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}

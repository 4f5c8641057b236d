// Package main is the entry point for the mws CLI.
package main

import (
	"github.com/donaldgifford/mws-toolkit/cmd/mws/cmd"
)

func main() {
	cmd.Execute()
}

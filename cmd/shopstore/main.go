// Package main is the entry point for the shopstore CLI.
package main

import (
	"github.com/donaldgifford/shopstore/cmd/shopstore/cmd"
)

func main() {
	cmd.Execute()
}

package main

import "github.com/AzielCF/az-medical-mcp/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/aswini27ms/folio/cmd/folio-cli/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/mcoot/missingletters/internal/cli"

func main() {
	cli.Execute()
}

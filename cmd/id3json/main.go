package main

import "github.com/tagtools/id3json/internal/cli"

func main() {
	cli.Execute()
}

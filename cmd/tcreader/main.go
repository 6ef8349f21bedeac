package main

import "github.com/vhhr7/tcreader/internal/cli"

func main() {
	cli.Main()
}

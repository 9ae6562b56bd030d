package main

import "cross-bloomfilter/cmd/cli"

func main() {
	cli.Execute()
}

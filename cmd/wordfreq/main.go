package main

import "github.com/aalvaropc/wordfreq/internal/cli"

func main() {
	cli.Execute()
}

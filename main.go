package main

import (
	"github.com/beka-birhanu/vinom-pathfinder/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Main()
}

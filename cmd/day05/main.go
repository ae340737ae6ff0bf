package main

import (
	"flag"

	"github.com/toatesONS/advent-of-code/internal/setup"
)

var inputFile = flag.String("inputFile", "", "Relative path to the input file (default input.txt)")

func main() {
	flag.Parse()
	setup.RunDay("day05", *inputFile)
}

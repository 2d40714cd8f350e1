package main

import (
	"github.com/OutSquareCapital/sigdiff/internal/cli"
)

func main() {
	cli.Execute()
}

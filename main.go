package main

import (
	"github.com/charmbracelet/scroller/internal/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/beccau/fix-mode/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"moonanalysis-backend/cmd/moons-cli/cmd"
)

func main() {
	cmd.Execute()
}

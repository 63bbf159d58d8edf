package main

import "github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/cmd/spectro/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/vallentes/OneFS-Dashboard/cmd"

func main() {
	cmd.Execute()
}

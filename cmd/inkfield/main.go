package main

import "github.com/inkfield/inkfield/internal/cmd"

func main() {
	cmd.Execute()
}

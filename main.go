package main

import "github.com/alexiusacademia/rcalc/cmd"

func main() {
	cmd.Execute()
}

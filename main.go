package main

import "github.com/alexiusacademia/isrcb/cmd"

func main() {
	cmd.Execute()
}

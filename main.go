package main

import "github.com/skolem/skolem/src/cmd"

func main() {
	cmd.Execute()
}

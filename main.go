package main

import "github.com/fnziad/ZeroTex/cmd"

func main() {
	cmd.Execute()
}

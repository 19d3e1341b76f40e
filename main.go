package main

import "github.com/kirksw/gc/cmd"

func main() {
	cmd.Execute()
}

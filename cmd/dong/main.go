package main

import "github.com/logicossoftware/go-dong/cmd/dong/cmd"

func main() {
	cmd.Execute()
}

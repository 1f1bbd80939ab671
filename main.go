package main

import "github.com/screenlog/screenlog/cmd"

func main() {
	cmd.Execute()
}

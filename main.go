package main

import "github.com/jsphweid/pianoroll/cmd"

func main() {
	cmd.Execute()
}

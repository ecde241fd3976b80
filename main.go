package main

import "github.com/jsphweid/songbook/cmd"

func main() {
	cmd.Execute()
}
